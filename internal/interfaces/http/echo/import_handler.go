package echo

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	app "github.com/nucareers/career-portal/internal/application/graduate"
	infrafile "github.com/nucareers/career-portal/internal/infrastructure/file"
)

const uploadField = "file"

type UploadSaver interface {
	Save(fh *multipart.FileHeader) (infrafile.StoredUpload, error)
}

type ImportHandler struct {
	useCase  app.ImportGraduates
	listRuns app.ListImportRuns
	uploads  UploadSaver
	log      logrus.FieldLogger
}

type rowErrorBody struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

type importGraduatesBody struct {
	ImportID          string         `json:"importId"`
	TotalInserted     int            `json:"totalInserted"`
	TotalFailed       int            `json:"totalFailed"`
	DuplicateNuIDs    []string       `json:"duplicateNuIds"`
	DuplicateNuEmails []string       `json:"duplicateNuEmails"`
	RowErrors         []rowErrorBody `json:"rowErrors"`
}

func NewImportHandler(useCase app.ImportGraduates, listRuns app.ListImportRuns, uploads UploadSaver, log logrus.FieldLogger) *ImportHandler {
	return &ImportHandler{useCase: useCase, listRuns: listRuns, uploads: uploads, log: log}
}

func (h *ImportHandler) ImportGraduates(c echo.Context) error {
	in := app.ImportGraduatesInput{Caller: callerFrom(c)}

	fh, err := c.FormFile(uploadField)
	switch {
	case err == nil:
		stored, err := h.uploads.Save(fh)
		if err != nil {
			if errors.Is(err, infrafile.ErrLegacyWorkbook) {
				return fail(c, http.StatusBadRequest, "Legacy .xls workbooks are not supported; save the file as .xlsx and upload again", nil)
			}
			if errors.Is(err, infrafile.ErrUnsupportedFileType) {
				return fail(c, http.StatusBadRequest, "Only .xlsx spreadsheets are allowed", nil)
			}
			h.log.WithError(err).Error("store uploaded spreadsheet failed")
			return fail(c, http.StatusInternalServerError, "Failed to import graduates", err.Error())
		}
		in.FilePath, in.FileName = stored.Path, stored.OriginalName
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		// The coordinator reports the missing upload.
	default:
		return fail(c, http.StatusBadRequest, "No file uploaded", err.Error())
	}

	out, err := h.useCase.Execute(c.Request().Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrForbidden):
			return fail(c, http.StatusForbidden, "Forbidden", nil)
		case errors.Is(err, app.ErrNoFileUploaded):
			return fail(c, http.StatusBadRequest, "No file uploaded", nil)
		case errors.Is(err, app.ErrNoValidRecords):
			return fail(c, http.StatusBadRequest, "No valid records to import.", nil)
		default:
			h.log.WithError(err).WithField("file", in.FileName).Error("graduate import failed")
			return fail(c, http.StatusInternalServerError, "Failed to import graduates", err.Error())
		}
	}

	body := importGraduatesBody{
		ImportID:          out.RunID,
		TotalInserted:     out.Outcome.TotalInserted,
		TotalFailed:       out.Outcome.TotalFailed,
		DuplicateNuIDs:    nonNil(out.Outcome.DuplicateNuIDs),
		DuplicateNuEmails: nonNil(out.Outcome.DuplicateNuEmails),
		RowErrors:         make([]rowErrorBody, 0, len(out.Outcome.RowErrors)),
	}
	for _, rejected := range out.Outcome.RowErrors {
		body.RowErrors = append(body.RowErrors, rowErrorBody{Row: rejected.Row, Message: rejected.Reason})
	}

	return respond(c, http.StatusCreated, body, out.Message)
}

func (h *ImportHandler) ListImportRuns(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	runs, err := h.listRuns.Execute(c.Request().Context(), app.ListImportRunsInput{
		Caller: callerFrom(c),
		Limit:  limit,
	})
	if err != nil {
		if errors.Is(err, app.ErrForbidden) {
			return fail(c, http.StatusForbidden, "Forbidden", nil)
		}
		h.log.WithError(err).Error("list import runs failed")
		return fail(c, http.StatusInternalServerError, "Failed to list import runs", nil)
	}

	return respond(c, http.StatusOK, runs, "")
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
