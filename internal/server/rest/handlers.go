package rest

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/wheel/internal/garage"
	"github.com/dmitrijs2005/wheel/internal/wire"
	"github.com/go-chi/chi/v5"
)

// mustHaveView is one row of the must-haves screen.
type mustHaveView struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Enabled bool   `json:"enabled"`
}

func (rt *Router) getState(w http.ResponseWriter, r *http.Request) {
	st := rt.store.Snapshot()

	seen := make([]int64, len(st.SeenCarIDs))
	for i, id := range st.SeenCarIDs {
		seen[i] = int64(id)
	}

	respondJSON(w, http.StatusOK, wire.StateResponse{
		Budget:     st.Budget,
		MustHaves:  st.MustHaves.Map(),
		LikedCars:  wire.FromVehicles(st.LikedCars),
		SeenCarIDs: seen,
		DeckSize:   len(garage.DeriveSwipeDeck(st)),
		TotalCars:  len(st.AllCars),
	})
}

func (rt *Router) listCars(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, wire.VehicleListResponse{Cars: wire.FromVehicles(rt.store.AllCars())})
}

func (rt *Router) getBudget(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, wire.SetBudgetResponse{
		Budget:   rt.store.Budget(),
		DeckSize: len(rt.store.CarsForSwiping()),
	})
}

func (rt *Router) putBudget(w http.ResponseWriter, r *http.Request) {
	var req budgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, CodeValidation, "invalid JSON body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, CodeValidation, formatValidationError(err))
		return
	}

	if err := rt.store.SetBudget(*req.Budget); err != nil {
		respondStoreError(w, err)
		return
	}

	rt.logger.Info(r.Context(), "Budget set", "budget", *req.Budget)
	respondJSON(w, http.StatusOK, wire.SetBudgetResponse{
		Budget:   *req.Budget,
		DeckSize: len(rt.store.CarsForSwiping()),
	})
}

func (rt *Router) listMustHaves(w http.ResponseWriter, r *http.Request) {
	mh := rt.store.MustHaves()

	views := make([]mustHaveView, 0, len(garage.AllMustHaves))
	for _, f := range garage.AllMustHaves {
		views = append(views, mustHaveView{Key: f.Key(), Label: f.Label(), Enabled: mh.Enabled(f)})
	}
	respondJSON(w, http.StatusOK, views)
}

func (rt *Router) toggleMustHave(w http.ResponseWriter, r *http.Request) {
	f, err := garage.ParseMustHave(chi.URLParam(r, "feature"))
	if err != nil {
		respondStoreError(w, err)
		return
	}

	enabled, err := rt.store.ToggleMustHave(f)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	rt.logger.Info(r.Context(), "Must-have toggled", "feature", f.Key(), "enabled", enabled)
	respondJSON(w, http.StatusOK, wire.ToggleMustHaveResponse{
		Feature:   f.Key(),
		Enabled:   enabled,
		MustHaves: rt.store.MustHaves().Map(),
		DeckSize:  len(rt.store.CarsForSwiping()),
	})
}

func (rt *Router) getSwipeDeck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, wire.VehicleListResponse{Cars: wire.FromVehicles(rt.store.CarsForSwiping())})
}

func (rt *Router) likeCar(w http.ResponseWriter, r *http.Request) {
	rt.decide(w, r, true)
}

func (rt *Router) nopeCar(w http.ResponseWriter, r *http.Request) {
	rt.decide(w, r, false)
}

func (rt *Router) decide(w http.ResponseWriter, r *http.Request, like bool) {
	car, ok := rt.lookup(w, r)
	if !ok {
		return
	}

	var err error
	if like {
		err = rt.store.LikeCar(car)
	} else {
		err = rt.store.NopeCar(car)
	}
	if err != nil {
		respondStoreError(w, err)
		return
	}

	rt.logger.Info(r.Context(), "Decision recorded", "id", car.ID, "like", like)
	respondJSON(w, http.StatusOK, wire.DecisionResponse{
		Car:      wire.FromVehicle(car),
		DeckSize: len(rt.store.CarsForSwiping()),
	})
}

func (rt *Router) listLiked(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, wire.VehicleListResponse{Cars: wire.FromVehicles(rt.store.LikedCars())})
}

func (rt *Router) getDetails(w http.ResponseWriter, r *http.Request) {
	car, ok := rt.lookup(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, wire.FromVehicle(car))
}

// lookup resolves the {id} path parameter. It writes the error response
// itself and reports false when there is nothing to continue with.
func (rt *Router) lookup(w http.ResponseWriter, r *http.Request) (garage.Vehicle, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, CodeValidation, "id must be an integer")
		return garage.Vehicle{}, false
	}

	car, ok := rt.store.GetCarByID(garage.VehicleID(id))
	if !ok {
		respondError(w, http.StatusNotFound, CodeNotFound, "vehicle "+raw+" not found")
		return garage.Vehicle{}, false
	}
	return car, true
}
