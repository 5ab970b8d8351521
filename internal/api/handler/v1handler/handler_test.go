package v1handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"crm/internal/api/handler/v1handler"
	mockcrm "crm/internal/crm/mock"
	"crm/pkg/logger"
	"crm/pkg/serrors"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func newTestMux(t *testing.T) (*mockcrm.MockService, *http.ServeMux) {
	t.Helper()

	ctrl := gomock.NewController(t)
	service := mockcrm.NewMockService(ctrl)

	mux := http.NewServeMux()
	v1handler.New(v1handler.Deps{Service: service}).Register(mux)

	return service, mux
}

func doRequest(mux *http.ServeMux, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	return rec
}

func TestChangeUserEmail_OK(t *testing.T) {
	service, mux := newTestMux(t)

	service.EXPECT().
		ChangeUserEmail(gomock.Any(), int64(7), "new@gmail.com").
		Return("OK", nil)

	rec := doRequest(mux, "/v1/users/7/email", `{"email":"new@gmail.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.JSONEq(t, `{"result":"OK"}`, rec.Body.String())
}

func TestChangeUserEmail_BusinessRuleViolationIsConflict(t *testing.T) {
	service, mux := newTestMux(t)

	service.EXPECT().
		ChangeUserEmail(gomock.Any(), int64(7), "new@gmail.com").
		Return("can't change email after it's confirmed", nil)

	rec := doRequest(mux, "/v1/users/7/email", `{"email":"new@gmail.com"}`)
	require.Equal(t, http.StatusConflict, rec.Code)
	require.JSONEq(t,
		`{"error":{"code":"CONFLICT","message":"can't change email after it's confirmed"}}`,
		rec.Body.String())
}

func TestChangeUserEmail_UserNotFound(t *testing.T) {
	service, mux := newTestMux(t)

	service.EXPECT().
		ChangeUserEmail(gomock.Any(), int64(404), "new@gmail.com").
		Return("", serrors.With(serrors.ErrNotFound, "user not found"))

	rec := doRequest(mux, "/v1/users/404/email", `{"email":"new@gmail.com"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t,
		`{"error":{"code":"NOT_FOUND","message":"user not found"}}`,
		rec.Body.String())
}

func TestChangeUserEmail_MalformedEmailIsBadRequest(t *testing.T) {
	service, mux := newTestMux(t)

	service.EXPECT().
		ChangeUserEmail(gomock.Any(), int64(7), "not-an-email").
		Return("", serrors.With(serrors.ErrBadRequest, "email is missing the '@' sign"))

	rec := doRequest(mux, "/v1/users/7/email", `{"email":"not-an-email"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t,
		`{"error":{"code":"BAD_REQUEST","message":"email is missing the '@' sign"}}`,
		rec.Body.String())
}

func TestChangeUserEmail_InvalidUserID(t *testing.T) {
	_, mux := newTestMux(t)

	rec := doRequest(mux, "/v1/users/abc/email", `{"email":"new@gmail.com"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChangeUserEmail_MissingEmailField(t *testing.T) {
	_, mux := newTestMux(t)

	rec := doRequest(mux, "/v1/users/7/email", `{}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChangeUserEmail_InvalidJSON(t *testing.T) {
	_, mux := newTestMux(t)

	rec := doRequest(mux, "/v1/users/7/email", `{"email":`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChangeUserEmail_InternalErrorIsOpaque(t *testing.T) {
	service, mux := newTestMux(t)

	service.EXPECT().
		ChangeUserEmail(gomock.Any(), int64(7), "new@gmail.com").
		Return("", errors.New("connection reset by peer"))

	rec := doRequest(mux, "/v1/users/7/email", `{"email":"new@gmail.com"}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t,
		`{"error":{"code":"INTERNAL","message":"internal error"}}`,
		rec.Body.String())
}
