package handle

import (
	"net/http"

	"smart-menu/internal/menuservice/app/services"
	"smart-menu/internal/menuservice/domain/dto"
	"smart-menu/internal/mylogger"
)

type MenuHandler struct {
	menuService *services.MenuService
	mylog       mylogger.Logger
}

func NewMenuHandler(menuService *services.MenuService, mylog mylogger.Logger) *MenuHandler {
	return &MenuHandler{
		menuService: menuService,
		mylog:       mylog,
	}
}

// Menu returns the full catalog.
func (mh *MenuHandler) Menu() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusOK, dto.FromItems(mh.menuService.Menu()))
	}
}

// Recommendations answers a free-text query with ranked items,
// suggested combos, detected tags and the detected category.
func (mh *MenuHandler) Recommendations() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")
		rec := mh.menuService.Recommend(query)

		mh.mylog.Action("recommendations_served").With("request_id", requestID(r)).Debug(
			"Recommendation computed",
			"query", query,
			"items", len(rec.Items),
			"combos", len(rec.SuggestedCombos),
		)
		jsonResponse(w, http.StatusOK, dto.FromRecommendation(rec))
	}
}
