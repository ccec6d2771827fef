package submissions

import (
	"errors"
	"net/http"

	"forms-service/internal/app/contracts"
	"forms-service/internal/pkg/constvars"
	"forms-service/internal/pkg/exceptions"
	"forms-service/internal/pkg/templates"
	"forms-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SubmissionController struct {
	Log               *zap.Logger
	SubmissionUsecase contracts.SubmissionUsecase
}

func NewSubmissionController(logger *zap.Logger, submissionUsecase contracts.SubmissionUsecase) *SubmissionController {
	return &SubmissionController{
		Log:               logger,
		SubmissionUsecase: submissionUsecase,
	}
}

func (ctrl *SubmissionController) Heartbeat(w http.ResponseWriter, r *http.Request) {
	utils.BuildEmptyResponse(w, constvars.StatusOK)
}

func (ctrl *SubmissionController) AddBiobank(w http.ResponseWriter, r *http.Request) {
	ctrl.handleWriteForm(w, r, constvars.FormKindAddBiobank)
}

func (ctrl *SubmissionController) AddCollection(w http.ResponseWriter, r *http.Request) {
	ctrl.handleWriteForm(w, r, constvars.FormKindAddCollection)
}

func (ctrl *SubmissionController) handleWriteForm(w http.ResponseWriter, r *http.Request, formKind string) {
	fields, err := utils.FormFields(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	result, err := ctrl.SubmissionUsecase.SubmitForm(r.Context(), formKind, fields)
	if err != nil {
		var customErr *exceptions.CustomError
		if errors.As(err, &customErr) && customErr.StatusCode == constvars.StatusUnauthorized {
			ctrl.renderFailurePage(w, fields[constvars.FieldOriginURL], customErr)
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.renderSuccessPage(w, result.OriginURL)
}

func (ctrl *SubmissionController) Suggestion(w http.ResponseWriter, r *http.Request) {
	fields, err := utils.FormFields(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	result, err := ctrl.SubmissionUsecase.SubmitSuggestion(r.Context(), fields)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.renderSuccessPage(w, result.OriginURL)
}

func (ctrl *SubmissionController) ListEntries(w http.ResponseWriter, r *http.Request) {
	formKind := chi.URLParam(r, "formKind")
	token := r.URL.Query().Get(constvars.FieldToken)

	records, err := ctrl.SubmissionUsecase.ListEntries(r.Context(), formKind, token)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, records)
}

func (ctrl *SubmissionController) renderSuccessPage(w http.ResponseWriter, originURL string) {
	page, err := templates.RenderSuccessPage(originURL)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildHTMLResponse(w, constvars.StatusOK, page)
}

func (ctrl *SubmissionController) renderFailurePage(w http.ResponseWriter, originURL string, customErr *exceptions.CustomError) {
	ctrl.Log.Warn(customErr.DevMessage)
	page, err := templates.RenderFailurePage(originURL)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildHTMLResponse(w, constvars.StatusUnauthorized, page)
}
