package middleware_test

import (
	"net/http"
	"net/http/httptest"

	"greenmint/internal/http/handler/middleware"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var _ = Describe("Middleware", func() {
	var (
		w    *httptest.ResponseRecorder
		req  *http.Request
		seen string
		next http.Handler
	)

	BeforeEach(func() {
		w = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodGet, "/api/assets", nil)
		seen = ""
		next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = r.Context().Value(middleware.RequestIDKey).(string)
			w.WriteHeader(http.StatusTeapot)
		})
	})

	Describe("RequestID", func() {
		It("should assign a request id", func() {
			middleware.NewRequestIDMiddleware().RequestID(next).ServeHTTP(w, req)

			Expect(seen).NotTo(BeEmpty())
			Expect(w.Header().Get("X-Request-ID")).To(Equal(seen))
		})

		It("should keep the caller's request id", func() {
			req.Header.Set("X-Request-ID", "req-42")
			middleware.NewRequestIDMiddleware().RequestID(next).ServeHTTP(w, req)

			Expect(seen).To(Equal("req-42"))
			Expect(w.Header().Get("X-Request-ID")).To(Equal("req-42"))
		})
	})

	Describe("Logging", func() {
		It("should log the handled request", func() {
			core, logs := observer.New(zapcore.InfoLevel)
			logger := zap.New(core).Sugar()

			hdlr := middleware.NewLoggingMiddleware(logger).Logging(next)
			middleware.NewRequestIDMiddleware().RequestID(hdlr).ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusTeapot))
			Expect(logs.Len()).To(Equal(1))
			fields := logs.All()[0].ContextMap()
			Expect(fields).To(HaveKeyWithValue("method", "GET"))
			Expect(fields).To(HaveKeyWithValue("path", "/api/assets"))
			Expect(fields).To(HaveKeyWithValue("status", int64(http.StatusTeapot)))
			Expect(fields).To(HaveKeyWithValue("request_id", seen))
		})
	})
})
