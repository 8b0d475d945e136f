package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	InvoicesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "eventbill_invoices_created_total",
		Help: "Number of invoices created.",
	})

	PDFRenders = promauto.NewCounter(prometheus.CounterOpts{
		Name: "eventbill_pdf_renders_total",
		Help: "Number of invoice PDF documents rendered.",
	})

	PushDeliveries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "eventbill_push_deliveries_total",
		Help: "Push notification relay attempts by outcome.",
	}, []string{"outcome"})
)
