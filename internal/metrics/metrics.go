package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rocketscienceinc/tictactoe-session/internal/entity"
)

const namespace = "tictactoe"

const (
	resultAccepted = "accepted"
	resultRejected = "rejected"
)

// Recorder counts moves and finished rounds on a private prometheus registry.
// A nil Recorder is valid and records nothing.
type Recorder struct {
	registry *prometheus.Registry

	moves           *prometheus.CounterVec
	gamesFinished   *prometheus.CounterVec
	sessionsRemoved prometheus.Counter
}

// NewRecorder registers the collectors. activeSessions, if set, is sampled on every scrape.
func NewRecorder(activeSessions func() int) *Recorder {
	rec := &Recorder{
		registry: prometheus.NewRegistry(),
		moves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "moves_total",
			Help:      "Player moves by result.",
		}, []string{"result"}),
		gamesFinished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_finished_total",
			Help:      "Finished rounds by game mode and final status.",
		}, []string{"mode", "status"}),
		sessionsRemoved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_removed_total",
			Help:      "Sessions explicitly torn down.",
		}),
	}

	rec.registry.MustRegister(rec.moves, rec.gamesFinished, rec.sessionsRemoved)

	if activeSessions != nil {
		rec.registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions_active",
			Help:      "Sessions currently holding a game.",
		}, func() float64 {
			return float64(activeSessions())
		}))
	}

	return rec
}

func (r *Recorder) RecordMove(accepted bool) {
	if r == nil {
		return
	}

	result := resultRejected
	if accepted {
		result = resultAccepted
	}

	r.moves.WithLabelValues(result).Inc()
}

func (r *Recorder) RecordGameFinished(mode entity.GameMode, status entity.GameStatus) {
	if r == nil {
		return
	}

	r.gamesFinished.WithLabelValues(string(mode), string(status)).Inc()
}

func (r *Recorder) RecordSessionRemoved() {
	if r == nil {
		return
	}

	r.sessionsRemoved.Inc()
}

// Handler serves the recorder's registry in the prometheus text format.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}

	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
