package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sixtyseconds/showcase/pkg/catalog"
	"github.com/sixtyseconds/showcase/pkg/email"
	"github.com/sixtyseconds/showcase/pkg/localize"
	"github.com/sixtyseconds/showcase/pkg/nav"
	"github.com/sixtyseconds/showcase/pkg/pricing"
)

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message, details string) {
	body := map[string]string{"error": message}
	if details != "" {
		body["details"] = details
	}
	respondJSON(w, status, body)
}

// Health handler

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Contact-form email handler

func (s *Server) handleSendEmail(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodOptions:
		w.WriteHeader(http.StatusOK)
		return
	case http.MethodPost:
	default:
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed", "")
		return
	}

	var req email.SendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to send email", "invalid JSON body")
		return
	}

	result, err := s.dispatcher.Dispatch(r.Context(), req)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to send email", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": result.Message})
}

// View resolution handler

type solutionView struct {
	Challenge catalog.Challenge  `json:"challenge"`
	Solutions []catalog.Solution `json:"solutions"`
}

type planView struct {
	Name        string                `json:"name"`
	Price       string                `json:"price"`
	Description string                `json:"description"`
	Popular     bool                  `json:"popular,omitempty"`
	Custom      bool                  `json:"custom,omitempty"`
	Features    []catalog.PlanFeature `json:"features"`
}

type viewResponse struct {
	State       nav.State           `json:"state"`
	Path        string              `json:"path"`
	Challenges  []catalog.Challenge `json:"challenges,omitempty"`
	Solution    *solutionView       `json:"solution,omitempty"`
	Plans       []planView          `json:"plans,omitempty"`
	BillingNote string              `json:"billingNote,omitempty"`
	PriceNote   string              `json:"priceNote,omitempty"`
}

const (
	billingNote = "Save 17% with annual billing"
	vatNote     = "*Price excludes VAT"
)

// handleView resolves a site path into view state plus the content that
// view needs, with prices formatted for the resolved currency and copy
// respelled for American audiences.
func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	prior := nav.NewState()
	if b := r.URL.Query().Get("billing"); b == string(pricing.Annual) {
		prior.Billing = pricing.Annual
	}

	path := r.URL.Query().Get("path")
	if path == "" {
		path = "/"
	}

	state, err := s.nav.Resolve(path, prior)
	if err != nil {
		if errors.Is(err, nav.ErrChallengeNotFound) {
			http.Redirect(w, r, s.nav.HomePath(prior.Currency), http.StatusFound)
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to resolve view", err.Error())
		return
	}

	resp := viewResponse{
		State: state,
		Path:  s.nav.BuildURL(state),
	}

	switch state.Mode {
	case nav.ModePricing:
		resp.Plans = s.planViews(state)
		resp.BillingNote = billingNote
		if state.Currency == pricing.GBP {
			resp.PriceNote = vatNote
		}
	case nav.ModeSolution:
		ch, err := s.catalog.Challenge(state.Challenge)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "Failed to resolve view", err.Error())
			return
		}
		resp.Solution = &solutionView{
			Challenge: localizeChallenge(ch, state.Currency),
			Solutions: localizeSolutions(s.catalog.SolutionsFor(ch), state.Currency),
		}
	default:
		resp.Challenges = make([]catalog.Challenge, 0, len(s.catalog.Challenges))
		for _, ch := range s.catalog.Challenges {
			resp.Challenges = append(resp.Challenges, localizeChallenge(ch, state.Currency))
		}
	}

	respondJSON(w, http.StatusOK, resp)
}

func (s *Server) planViews(state nav.State) []planView {
	plans := make([]planView, 0, len(s.catalog.Plans))
	for _, p := range s.catalog.Plans {
		features := make([]catalog.PlanFeature, len(p.Features))
		for i, f := range p.Features {
			features[i] = f
			features[i].Name = localize.Apply(f.Name, state.Currency)
			features[i].Tooltip = localize.Apply(f.Tooltip, state.Currency)
		}
		plans = append(plans, planView{
			Name:        p.Name,
			Price:       pricing.Format(p.BasePrice(), state.Currency, state.Billing),
			Description: localize.Apply(p.Description, state.Currency),
			Popular:     p.Popular,
			Custom:      p.Custom,
			Features:    features,
		})
	}
	return plans
}

func localizeChallenge(ch catalog.Challenge, c pricing.Currency) catalog.Challenge {
	ch.Title = localize.Apply(ch.Title, c)
	ch.Description = localize.Apply(ch.Description, c)
	ch.Subtext = localize.Apply(ch.Subtext, c)
	return ch
}

func localizeSolutions(sols []catalog.Solution, c pricing.Currency) []catalog.Solution {
	out := make([]catalog.Solution, len(sols))
	for i, sol := range sols {
		sol.Title = localize.Apply(sol.Title, c)
		sol.Subtitle = localize.Apply(sol.Subtitle, c)
		sol.Description = localize.Apply(sol.Description, c)
		sol.CTA = localize.Apply(sol.CTA, c)
		sol.Integration = localize.Apply(sol.Integration, c)
		sol.Compatibility = localize.Apply(sol.Compatibility, c)
		features := make([]catalog.Feature, len(sol.Features))
		for j, f := range sol.Features {
			features[j] = f
			features[j].Title = localize.Apply(f.Title, c)
			features[j].Description = localize.Apply(f.Description, c)
		}
		sol.Features = features
		out[i] = sol
	}
	return out
}

// Audience rotation handler

type audiencesResponse struct {
	Audiences []string                `json:"audiences"`
	Colors    []catalog.AudienceColor `json:"colors,omitempty"`
	Primary   string                  `json:"primary,omitempty"`
	Secondary string                  `json:"secondary,omitempty"`
}

// handleAudiences returns the audience word list, plus the rotor's current
// pair when a rotor is running.
func (s *Server) handleAudiences(w http.ResponseWriter, r *http.Request) {
	resp := audiencesResponse{
		Audiences: s.catalog.Audiences,
		Colors:    s.catalog.AudienceColors,
	}
	if s.rotor != nil {
		resp.Primary, resp.Secondary = s.rotor.Current()
		resp.Audiences = s.rotor.Words()
	}
	respondJSON(w, http.StatusOK, resp)
}
