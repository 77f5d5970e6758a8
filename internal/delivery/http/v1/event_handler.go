package v1

import (
	"net/http"

	"artmarket-backend/internal/usecase"
	"artmarket-backend/pkg/utils"
)

type EventHandler struct {
	eventUC *usecase.EventUsecase
}

func NewEventHandler(uc *usecase.EventUsecase) *EventHandler {
	return &EventHandler{eventUC: uc}
}

func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.eventUC.ListUpcoming(r.Context())
	if err != nil {
		utils.WriteAppError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{"data": events})
}

func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	ev, err := h.eventUC.GetEvent(r.Context(), r.PathValue("id"))
	if err != nil {
		utils.WriteAppError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, ev)
}

// POST /api/v1/events/{id}/tickets
func (h *EventHandler) RequestTickets(w http.ResponseWriter, r *http.Request) {
	var req usecase.TicketRequest
	if err := utils.DecodeAndValidate(r, &req); err != nil {
		utils.WriteAppError(w, r, err)
		return
	}

	handoff, err := h.eventUC.RequestTickets(r.Context(), r.PathValue("id"), req)
	if err != nil {
		utils.WriteAppError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, handoff)
}
