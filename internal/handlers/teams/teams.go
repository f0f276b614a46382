// Package teams serves team and member administration over HTTP.
package teams

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/KirkDiggler/standup/internal/models"
	"github.com/KirkDiggler/standup/internal/services/roster"
	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

// Handler routes team administration to the roster service
type Handler struct {
	roster roster.Service
	logger logrus.FieldLogger
}

// NewHandler creates a teams handler
func NewHandler(logger logrus.FieldLogger, rosterService roster.Service) *Handler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Handler{
		roster: rosterService,
		logger: logger.WithField("component", "teams"),
	}
}

// Routes returns the router to mount under /teams
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.createTeam)
	r.Route("/{teamID}", func(r chi.Router) {
		r.Get("/", h.getTeam)
		r.Put("/", h.updateTeam)
		r.Get("/members", h.listMembers)
		r.Post("/members", h.addMember)
		r.Delete("/members/{memberID}", h.deactivateMember)
	})
	return r
}

type configBody struct {
	TargetDurationSeconds  int    `json:"targetDurationSeconds"`
	MaxSpeakingTimeSeconds int    `json:"maxSpeakingTimeSeconds"`
	ScoringMode            string `json:"scoringMode"`
}

func (c *configBody) model() models.TeamConfig {
	return models.TeamConfig{
		TargetDurationSeconds:  c.TargetDurationSeconds,
		MaxSpeakingTimeSeconds: c.MaxSpeakingTimeSeconds,
		ScoringMode:            models.ScoringMode(c.ScoringMode),
	}
}

type memberBody struct {
	Name       string `json:"name"`
	Title      string `json:"title"`
	Avatar     string `json:"avatar"`
	ExternalID string `json:"externalId"`
}

func (m *memberBody) model() *roster.NewMember {
	return &roster.NewMember{
		Name:       m.Name,
		Title:      m.Title,
		Avatar:     m.Avatar,
		ExternalID: m.ExternalID,
	}
}

type createTeamRequest struct {
	Name    string        `json:"name"`
	Config  configBody    `json:"config"`
	Members []*memberBody `json:"members"`
}

type updateTeamRequest struct {
	Name   string      `json:"name"`
	Config *configBody `json:"config"`
}

type teamStats struct {
	TotalSessions   int `json:"totalSessions"`
	AverageDuration int `json:"averageDuration"`
	AverageScore    int `json:"averageScore"`
	BestDuration    int `json:"bestDuration"`
	CurrentStreak   int `json:"currentStreak"`
	LongestStreak   int `json:"longestStreak"`
}

type teamResponse struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Config    configBody        `json:"config"`
	Stats     teamStats         `json:"stats"`
	Members   []*memberResponse `json:"members,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

type memberStats struct {
	TotalSessions int `json:"totalSessions"`
	TotalScore    int `json:"totalScore"`
	AverageTime   int `json:"averageTime"`
	AverageScore  int `json:"averageScore"`
}

type memberResponse struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Title      string      `json:"title,omitempty"`
	Avatar     string      `json:"avatar,omitempty"`
	ExternalID string      `json:"externalId,omitempty"`
	ListOrder  int         `json:"listOrder"`
	IsActive   bool        `json:"isActive"`
	Stats      memberStats `json:"stats"`
}

func toTeam(team *models.Team, members []*models.Member) *teamResponse {
	return &teamResponse{
		ID:   team.ID,
		Name: team.Name,
		Config: configBody{
			TargetDurationSeconds:  team.Config.TargetDurationSeconds,
			MaxSpeakingTimeSeconds: team.Config.MaxSpeakingTimeSeconds,
			ScoringMode:            string(team.Config.ScoringMode),
		},
		Stats: teamStats{
			TotalSessions:   team.Stats.TotalSessions,
			AverageDuration: team.Stats.AverageDuration,
			AverageScore:    team.Stats.AverageScore,
			BestDuration:    team.Stats.BestDuration,
			CurrentStreak:   team.Stats.CurrentStreak,
			LongestStreak:   team.Stats.LongestStreak,
		},
		Members:   toMembers(members),
		CreatedAt: team.CreatedAt,
		UpdatedAt: team.UpdatedAt,
	}
}

func toMember(m *models.Member) *memberResponse {
	return &memberResponse{
		ID:         m.ID,
		Name:       m.Name,
		Title:      m.Title,
		Avatar:     m.Avatar,
		ExternalID: m.ExternalID,
		ListOrder:  m.ListOrder,
		IsActive:   m.IsActive,
		Stats: memberStats{
			TotalSessions: m.Stats.TotalSessions,
			TotalScore:    m.Stats.TotalScore,
			AverageTime:   m.Stats.AverageTime,
			AverageScore:  m.Stats.AverageScore,
		},
	}
}

func toMembers(members []*models.Member) []*memberResponse {
	if len(members) == 0 {
		return nil
	}
	out := make([]*memberResponse, 0, len(members))
	for _, m := range members {
		out = append(out, toMember(m))
	}
	return out
}

func (h *Handler) createTeam(w http.ResponseWriter, r *http.Request) {
	var req createTeamRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := &roster.CreateTeamInput{
		Name:   req.Name,
		Config: req.Config.model(),
	}
	for _, m := range req.Members {
		if m == nil {
			continue
		}
		input.Members = append(input.Members, m.model())
	}

	output, err := h.roster.CreateTeam(r.Context(), input)
	if err != nil {
		h.fail(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTeam(output.Team, output.Members))
}

func (h *Handler) getTeam(w http.ResponseWriter, r *http.Request) {
	output, err := h.roster.GetTeam(r.Context(), &roster.GetTeamInput{
		TeamID: chi.URLParam(r, "teamID"),
	})
	if err != nil {
		h.fail(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toTeam(output.Team, output.Members))
}

func (h *Handler) updateTeam(w http.ResponseWriter, r *http.Request) {
	var req updateTeamRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := &roster.UpdateTeamInput{
		TeamID: chi.URLParam(r, "teamID"),
		Name:   req.Name,
	}
	if req.Config != nil {
		config := req.Config.model()
		input.Config = &config
	}

	output, err := h.roster.UpdateTeam(r.Context(), input)
	if err != nil {
		h.fail(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toTeam(output.Team, nil))
}

func (h *Handler) listMembers(w http.ResponseWriter, r *http.Request) {
	output, err := h.roster.ListMembers(r.Context(), &roster.ListMembersInput{
		TeamID:     chi.URLParam(r, "teamID"),
		ActiveOnly: r.URL.Query().Get("active") == "true",
	})
	if err != nil {
		h.fail(w, err)
		return
	}

	members := toMembers(output.Members)
	if members == nil {
		members = []*memberResponse{}
	}
	writeJSON(w, http.StatusOK, members)
}

func (h *Handler) addMember(w http.ResponseWriter, r *http.Request) {
	var req memberBody
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	output, err := h.roster.AddMember(r.Context(), &roster.AddMemberInput{
		TeamID: chi.URLParam(r, "teamID"),
		Member: req.model(),
	})
	if err != nil {
		h.fail(w, err)
		return
	}

	status := http.StatusOK
	if output.Created {
		status = http.StatusCreated
	}
	writeJSON(w, status, toMember(output.Member))
}

func (h *Handler) deactivateMember(w http.ResponseWriter, r *http.Request) {
	err := h.roster.DeactivateMember(r.Context(), &roster.DeactivateMemberInput{
		TeamID:   chi.URLParam(r, "teamID"),
		MemberID: chi.URLParam(r, "memberID"),
	})
	if err != nil {
		h.fail(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// fail maps roster errors onto status codes; anything else is logged as a 500
func (h *Handler) fail(w http.ResponseWriter, err error) {
	var rosterErr roster.RosterError
	if errors.As(err, &rosterErr) {
		switch rosterErr {
		case roster.ErrTeamNotFound, roster.ErrMemberNotFound:
			writeError(w, http.StatusNotFound, rosterErr.Error())
			return
		case roster.ErrInvalidName, roster.ErrInvalidConfig:
			writeError(w, http.StatusBadRequest, rosterErr.Error())
			return
		}
	}

	h.logger.WithError(err).Error("team request failed")
	writeError(w, http.StatusInternalServerError, "internal error")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func readJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
