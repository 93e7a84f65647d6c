package echo_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	app "github.com/nucareers/career-portal/internal/application/graduate"
	infrafile "github.com/nucareers/career-portal/internal/infrastructure/file"
	httpecho "github.com/nucareers/career-portal/internal/interfaces/http/echo"
)

const testSecret = "test-secret"

type fakeImportUseCase struct {
	output app.ImportGraduatesOutput
	err    error
	calls  []app.ImportGraduatesInput
}

func (f *fakeImportUseCase) Execute(ctx context.Context, in app.ImportGraduatesInput) (app.ImportGraduatesOutput, error) {
	f.calls = append(f.calls, in)
	if f.err != nil {
		return app.ImportGraduatesOutput{}, f.err
	}
	return f.output, nil
}

type fakeListRuns struct {
	runs []app.ImportRunOutput
	err  error
	got  app.ListImportRunsInput
}

func (f *fakeListRuns) Execute(ctx context.Context, in app.ListImportRunsInput) ([]app.ImportRunOutput, error) {
	f.got = in
	return f.runs, f.err
}

type fakeUploads struct {
	stored infrafile.StoredUpload
	err    error
	saved  int
}

func (f *fakeUploads) Save(fh *multipart.FileHeader) (infrafile.StoredUpload, error) {
	f.saved++
	if f.err != nil {
		return infrafile.StoredUpload{}, f.err
	}
	return f.stored, nil
}

type fakeListGraduates struct {
	output app.ListGraduatesOutput
	err    error
	got    app.ListGraduatesInput
}

func (f *fakeListGraduates) Execute(ctx context.Context, in app.ListGraduatesInput) (app.ListGraduatesOutput, error) {
	f.got = in
	return f.output, f.err
}

type fakeGetGraduate struct {
	output app.GraduateOutput
	err    error
}

func (f *fakeGetGraduate) Execute(ctx context.Context, in app.GetGraduateInput) (app.GraduateOutput, error) {
	return f.output, f.err
}

type fakeUpdateGraduate struct {
	output app.GraduateOutput
	err    error
	got    app.UpdateGraduateProfileInput
	called bool
}

func (f *fakeUpdateGraduate) Execute(ctx context.Context, in app.UpdateGraduateProfileInput) (app.GraduateOutput, error) {
	f.called = true
	f.got = in
	return f.output, f.err
}

type fakeDeleteGraduate struct {
	err    error
	called bool
}

func (f *fakeDeleteGraduate) Execute(ctx context.Context, in app.DeleteGraduateInput) error {
	f.called = true
	return f.err
}

type testServer struct {
	echo    *echo.Echo
	imports *fakeImportUseCase
	runs    *fakeListRuns
	uploads *fakeUploads
	list    *fakeListGraduates
	get     *fakeGetGraduate
	update  *fakeUpdateGraduate
	remove  *fakeDeleteGraduate
}

func newTestServer() *testServer {
	s := &testServer{
		echo:    echo.New(),
		imports: &fakeImportUseCase{},
		runs:    &fakeListRuns{},
		uploads: &fakeUploads{stored: infrafile.StoredUpload{Path: "uploads/tmp.xlsx", OriginalName: "graduates.xlsx"}},
		list:    &fakeListGraduates{},
		get:     &fakeGetGraduate{},
		update:  &fakeUpdateGraduate{},
		remove:  &fakeDeleteGraduate{},
	}

	log := logrus.New()
	log.SetOutput(io.Discard)

	httpecho.RegisterRoutes(
		s.echo,
		httpecho.NewAuthenticator(testSecret, "accessToken"),
		httpecho.NewImportHandler(s.imports, s.runs, s.uploads, log),
		httpecho.NewGraduateHandler(s.list, s.get, s.update, s.remove, log),
	)
	return s
}

func (s *testServer) serve(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func tokenFor(t *testing.T, sub, role string) string {
	t.Helper()

	token, err := httpecho.SignAccessToken(testSecret, sub, role, time.Hour, time.Now())
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func withToken(req *http.Request, token string) *http.Request {
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	return req
}

func multipartUpload(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unexpected json %q: %v", rec.Body.String(), err)
	}
	return got
}
