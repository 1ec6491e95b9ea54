package drafts

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"careform-service/internal/pkg/constvars"
	"careform-service/internal/pkg/dto/requests"
	"careform-service/internal/pkg/dto/responses"
	"careform-service/internal/pkg/exceptions"
	"careform-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type DraftController struct {
	Log          *zap.Logger
	DraftUsecase DraftUsecase
}

func NewDraftController(logger *zap.Logger, draftUsecase DraftUsecase) *DraftController {
	return &DraftController{
		Log:          logger,
		DraftUsecase: draftUsecase,
	}
}

func (ctrl *DraftController) SaveDraft(w http.ResponseWriter, r *http.Request) {
	draftKey := chi.URLParam(r, constvars.URLParamDraftKey)

	request := new(requests.SaveDraft)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.DraftUsecase.SaveDraft(ctx, draftKey, &request.Record); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, "draft saved", nil)
}

func (ctrl *DraftController) LoadDraft(w http.ResponseWriter, r *http.Request) {
	draftKey := chi.URLParam(r, constvars.URLParamDraftKey)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	record, err := ctrl.DraftUsecase.LoadDraft(ctx, draftKey)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if record == nil {
		utils.BuildSuccessResponse(w, constvars.StatusOK, "no draft found", nil)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, "draft loaded", record)
}

func (ctrl *DraftController) ClearDraft(w http.ResponseWriter, r *http.Request) {
	draftKey := chi.URLParam(r, constvars.URLParamDraftKey)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.DraftUsecase.ClearDraft(ctx, draftKey); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, "draft cleared", nil)
}

// OpenForm serves the reconciled editable record for create or edit mode.
func (ctrl *DraftController) OpenForm(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	form, err := ctrl.DraftUsecase.OpenForm(ctx, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, "form opened", responses.PatientForm{
		State:     string(form.State),
		DraftKey:  form.DraftKey,
		FromDraft: form.FromDraft,
		Record:    form.Record,
	})
}

func (ctrl *DraftController) AppendMedication(w http.ResponseWriter, r *http.Request) {
	ctrl.mutateCollection(w, r, func(ctx context.Context, draftKey string) (interface{}, error) {
		return ctrl.DraftUsecase.AppendMedication(ctx, draftKey)
	})
}

func (ctrl *DraftController) RemoveMedication(w http.ResponseWriter, r *http.Request) {
	index, err := ctrl.itemIndex(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.mutateCollection(w, r, func(ctx context.Context, draftKey string) (interface{}, error) {
		return ctrl.DraftUsecase.RemoveMedication(ctx, draftKey, index)
	})
}

func (ctrl *DraftController) AppendDocument(w http.ResponseWriter, r *http.Request) {
	ctrl.mutateCollection(w, r, func(ctx context.Context, draftKey string) (interface{}, error) {
		return ctrl.DraftUsecase.AppendDocument(ctx, draftKey)
	})
}

func (ctrl *DraftController) RemoveDocument(w http.ResponseWriter, r *http.Request) {
	index, err := ctrl.itemIndex(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.mutateCollection(w, r, func(ctx context.Context, draftKey string) (interface{}, error) {
		return ctrl.DraftUsecase.RemoveDocument(ctx, draftKey, index)
	})
}

func (ctrl *DraftController) itemIndex(r *http.Request) (int, error) {
	raw := chi.URLParam(r, constvars.URLParamItemIndex)
	index, err := strconv.Atoi(raw)
	if err != nil {
		return 0, exceptions.ErrURLParamValidation(err, constvars.URLParamItemIndex)
	}
	return index, nil
}

func (ctrl *DraftController) mutateCollection(
	w http.ResponseWriter,
	r *http.Request,
	mutate func(ctx context.Context, draftKey string) (interface{}, error),
) {
	draftKey := chi.URLParam(r, constvars.URLParamDraftKey)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	record, err := mutate(ctx, draftKey)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, "collection updated", record)
}
