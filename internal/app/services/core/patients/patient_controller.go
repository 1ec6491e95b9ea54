package patients

import (
	"context"
	"net/http"
	"time"

	"careform-service/internal/pkg/constvars"
	"careform-service/internal/pkg/dto/requests"
	"careform-service/internal/pkg/exceptions"
	"careform-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type PatientController struct {
	Log            *zap.Logger
	PatientUsecase PatientUsecase
}

func NewPatientController(logger *zap.Logger, patientUsecase PatientUsecase) *PatientController {
	return &PatientController{
		Log:            logger,
		PatientUsecase: patientUsecase,
	}
}

func (ctrl *PatientController) ListPatients(w http.ResponseWriter, r *http.Request) {
	searchTerm := r.URL.Query().Get(constvars.QueryParamSearch)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	rows, err := ctrl.PatientUsecase.ListPatients(ctx, searchTerm)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, "patients listed", rows)
}

func (ctrl *PatientController) GetPatient(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	record, err := ctrl.PatientUsecase.GetPatient(ctx, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, "patient found", record)
}

func (ctrl *PatientController) CreatePatient(w http.ResponseWriter, r *http.Request) {
	ctrl.submit(w, r, "")
}

func (ctrl *PatientController) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	ctrl.submit(w, r, chi.URLParam(r, constvars.URLParamPatientID))
}

func (ctrl *PatientController) submit(w http.ResponseWriter, r *http.Request, patientID string) {
	request := new(requests.SubmitPatient)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.PatientID = patientID

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	response, err := ctrl.PatientUsecase.Submit(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	code := constvars.StatusOK
	message := "patient updated"
	if response.Created {
		code = constvars.StatusCreated
		message = "patient created"
	}
	utils.BuildSuccessResponse(w, code, message, response)
}

func (ctrl *PatientController) ValidateField(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ValidateField)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	response := ctrl.PatientUsecase.ValidateField(r.Context(), request)
	utils.BuildSuccessResponse(w, constvars.StatusOK, "field validated", response)
}

func (ctrl *PatientController) ValidateSection(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ValidateSection)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	fieldErrors := ctrl.PatientUsecase.ValidateSection(r.Context(), request.Section, &request.Record)
	utils.BuildSuccessResponse(w, constvars.StatusOK, "section validated", fieldErrors)
}
