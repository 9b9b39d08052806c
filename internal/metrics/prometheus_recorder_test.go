package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.ObserveGeneration(250 * time.Millisecond)
	pr.IncGeneration(OutcomeSuccess)
	pr.IncGeneration(OutcomeSuccess)
	pr.SetTreeStats(TreeStats{Groups: 6, NavLinks: 14, SidebarLinks: 21, SidebarDepth: 3, Deferred: 1})

	assert.InDelta(t, 0.25, testutil.ToFloat64(pr.duration), 1e-9)
	assert.InDelta(t, 2, testutil.ToFloat64(pr.generations.WithLabelValues("success")), 1e-9)
	assert.InDelta(t, 14, testutil.ToFloat64(pr.navLinks), 1e-9)
	assert.InDelta(t, 3, testutil.ToFloat64(pr.sidebarDepth), 1e-9)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, mfs)
}

func TestPrometheusRecorder_WriteTextfile(t *testing.T) {
	pr := NewPrometheusRecorder(nil)
	pr.SetTreeStats(TreeStats{Groups: 2})
	pr.IncGeneration(OutcomeFailed)

	path := filepath.Join(t.TempDir(), "sitecfg.prom")
	require.NoError(t, pr.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.True(t, strings.Contains(text, "sitecfg_nav_groups 2"), text)
	assert.Contains(t, text, `sitecfg_generations_total{outcome="failed"} 1`)
}

func TestNilRecorderIsSafe(t *testing.T) {
	var pr *PrometheusRecorder
	assert.NotPanics(t, func() {
		pr.ObserveGeneration(time.Second)
		pr.IncGeneration(OutcomeSuccess)
		pr.SetTreeStats(TreeStats{})
	})
}
