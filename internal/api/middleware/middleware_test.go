package middleware

import (
	"errors"
	"iex-companies/internal/api/constant"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMiddlewareError(t *testing.T) {
	testCases := []struct {
		name           string
		url            string
		handle         func(c *gin.Context)
		expectedStatus int
		expectedBody   string
		expectedLogs   int
	}{
		{
			name:           "no error",
			url:            "/",
			handle:         func(c *gin.Context) {},
			expectedStatus: http.StatusOK,
			expectedBody:   ``,
		},
		{
			name: "validation errors - empty",
			url:  "/",
			handle: func(c *gin.Context) {
				c.Error(validator.ValidationErrors{})
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"error":[],"data":null}`,
		},
		{
			name: "validation errors - symbol too long",
			url:  "/?symbol=ABCDEFGHIJKL",
			handle: func(c *gin.Context) {
				type request struct {
					Symbol string `form:"symbol" binding:"required,max=10"`
				}

				var r request
				if errorArg := c.ShouldBindQuery(&r); errorArg != nil {
					c.Error(errorArg)
				}
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody: `{"success":false,` +
				`"error":[{"field":"Symbol",` +
				`"message":"` +
				`Key: 'request.Symbol' Error:Field validation for 'Symbol' failed on the 'max' tag` +
				`"}],` +
				`"data":null}`,
		},
		{
			name: "custom error - not found",
			url:  "/",
			handle: func(c *gin.Context) {
				c.Error(constant.ErrNoCompany)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody: `{"success":false,` +
				`"error":"company not found","data":null}`,
		},
		{
			name: "custom error - bad gateway",
			url:  "/",
			handle: func(c *gin.Context) {
				c.Error(constant.NewCError(http.StatusBadGateway, "upstream unavailable"))
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody: `{"success":false,` +
				`"error":"upstream unavailable","data":null}`,
		},
		{
			name: "database failure is an internal server error",
			url:  "/",
			handle: func(c *gin.Context) {
				c.Error(errors.New("server selection timeout"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody: `{"success":false,` +
				`"error":"server selection timeout","data":null}`,
			expectedLogs: 1,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			//given
			core, logs := observer.New(zapcore.InfoLevel)
			recorder := httptest.NewRecorder()
			_, engine := gin.CreateTestContext(recorder)

			engine.GET("/", Error(zap.New(core)), tt.handle)
			r := httptest.NewRequest(http.MethodGet, tt.url, nil)

			//when
			engine.ServeHTTP(recorder, r)

			//then
			assert.Equal(t, tt.expectedStatus, recorder.Code)
			assert.Equal(t, tt.expectedBody, recorder.Body.String())
			assert.Equal(t, tt.expectedLogs, logs.Len())
		})
	}
}

func TestTimeoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Error(zap.NewNop()))
	r.Use(Timeout(50 * time.Millisecond))

	r.GET("/slow", func(c *gin.Context) {
		time.Sleep(100 * time.Millisecond)
		if c.Request.Context().Err() != nil {
			return
		}
		c.String(http.StatusOK, "too late")
	})

	req, _ := http.NewRequest(http.MethodGet, "/slow", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
	assert.Equal(t, `{"success":false,"error":"request timed out","data":null}`, w.Body.String())
}

func TestTimeoutMiddlewareRunsHandlerInline(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Error(zap.NewNop()))
	r.Use(Timeout(50 * time.Millisecond))

	finished := false
	hasDeadline := false
	r.GET("/slow", func(c *gin.Context) {
		_, hasDeadline = c.Request.Context().Deadline()
		time.Sleep(80 * time.Millisecond)
		finished = true
	})
	r.GET("/fast", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/slow", nil))

	// the handler is done by the time the response is returned
	assert.Equal(t, true, finished)
	assert.Equal(t, true, hasDeadline)
	assert.Equal(t, http.StatusGatewayTimeout, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fast", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestLoggerMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.InfoLevel)

	r := gin.New()
	r.Use(Logger(zap.New(core)))
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/fail", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/fail", nil))

	entries := logs.All()
	assert.Equal(t, 2, len(entries))
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "/", entries[0].ContextMap()["path"])
	assert.Equal(t, int64(http.StatusOK), entries[0].ContextMap()["status"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
}
