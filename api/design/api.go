package design

import (
	. "goa.design/goa/v3/dsl"
)

var _ = API("techsolutions", func() {
	Title("TechSolutions API")
	Description("Quote request intake for the TechSolutions landing page")
	Version("1.0.0")
	Server("api", func() {
		Host("localhost", func() {
			URI("http://localhost:8000")
		})
	})
})

// Health check
var _ = Service("health", func() {
	Description("Health check service")
	Method("check", func() {
		Result(HealthResult)
		HTTP(func() {
			GET("/health")
			Response(StatusOK)
		})
	})
})

var HealthResult = ResultType("HealthResult", func() {
	Attribute("status", String, "Service status", func() {
		Example("healthy")
	})
	Attribute("service", String, "Service name", func() {
		Example("TechSolutions API")
	})
	Attribute("database", String, "Database status", func() {
		Example("ok")
	})
})

// Quote request service
var _ = Service("quote", func() {
	Description("Quote request form intake")
	Error("bad_request", ErrorResult, "Quote request could not be stored")
	Error("invalid_payload", ErrorResult, "Submission failed validation")

	Method("submit", func() {
		Description("Store a quote request and notify the operator")
		Payload(QuoteRequestPayload)
		Result(QuoteRequestResult)
		Error("bad_request")
		Error("invalid_payload")
		HTTP(func() {
			POST("/api/quote-request")
			POST("/api/orcamento")
			Response(StatusOK)
			Response("bad_request", StatusBadRequest)
			Response("invalid_payload", StatusUnprocessableEntity)
		})
	})
})

var QuoteRequestPayload = Type("QuoteRequestPayload", func() {
	Attribute("name", String, "Full name", func() {
		Example("Ana Souza")
	})
	Attribute("email", String, "Contact email", func() {
		Example("ana@example.com")
	})
	Attribute("phone", String, "Contact phone", func() {
		Example("+55 11 99999-0000")
	})
	Attribute("company", String, "Company name (optional)")
	Attribute("services", ArrayOf(String), "Requested services", func() {
		MinLength(1)
		Example([]string{"design", "seo"})
	})
	Attribute("message", String, "Free text message")
	Required("name", "email", "phone", "services", "message")
})

var QuoteRequestResult = ResultType("QuoteRequestResult", func() {
	Attribute("message", String, "Acknowledgment", func() {
		Example("Quote request created successfully!")
	})
	Required("message")
})
