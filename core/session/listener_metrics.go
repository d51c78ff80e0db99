package session

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsListener Prometheus 指标监听器
// 统计交易次数与耗时分布，自身永不返回错误
type MetricsListener struct {
	started   *prometheus.CounterVec
	completed *prometheus.CounterVec
	duration  *prometheus.HistogramVec
}

// NewMetricsListener 创建指标监听器并注册指标
// reg 为 nil 时使用默认注册表
func NewMetricsListener(reg prometheus.Registerer) (*MetricsListener, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &MetricsListener{
		started: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hashgrove",
			Subsystem: "transaction",
			Name:      "started_total",
			Help:      "Number of ledger transactions started.",
		}, []string{"service", "method"}),
		completed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hashgrove",
			Subsystem: "transaction",
			Name:      "completed_total",
			Help:      "Number of ledger transactions completed, by outcome.",
		}, []string{"service", "method", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "hashgrove",
			Subsystem: "transaction",
			Name:      "duration_seconds",
			Help:      "Ledger transaction duration, including before-phase listener latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"service", "method"}),
	}

	for _, collector := range []prometheus.Collector{m.started, m.completed, m.duration} {
		if err := reg.Register(collector); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// OnBeforeTransaction 累加开始计数
func (m *MetricsListener) OnBeforeTransaction(_ context.Context, event *TransactionEvent) error {
	m.started.WithLabelValues(event.ServiceName, event.MethodName).Inc()
	return nil
}

// OnAfterTransaction 累加完成计数并观测耗时
func (m *MetricsListener) OnAfterTransaction(_ context.Context, event *TransactionEvent) error {
	outcome := "success"
	if event.Err != nil {
		outcome = "failure"
	}

	m.completed.WithLabelValues(event.ServiceName, event.MethodName, outcome).Inc()
	m.duration.WithLabelValues(event.ServiceName, event.MethodName).Observe(event.Duration.Seconds())
	return nil
}

// 确保实现了TransactionListener接口
var _ TransactionListener = (*MetricsListener)(nil)
