package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveGradeEInfeasible(t *testing.T) {
	m := New("test")

	m.ObserveGrade("SCALABLE")
	m.ObserveGrade("SCALABLE")
	m.ObserveGrade("RISKY")
	m.ObserveInfeasible("fees_exceed_price")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.GradesTotal.WithLabelValues("SCALABLE")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GradesTotal.WithLabelValues("RISKY")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.InfeasibleTotal.WithLabelValues("fees_exceed_price")))
}

func TestMiddleware_UsaRutaRegistrada(t *testing.T) {
	m := New("test")
	app := fiber.New()
	app.Use(m.Middleware())
	app.Get("/api/hpp/:product_id", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/metrics", m.Handler())

	for _, id := range []string{"a", "b"} {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/hpp/"+id, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/hpp/:product_id", "200")))

	resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "test_http_requests_total")
}
