package graph

import (
	_ "embed"
	"net/http"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
)

//go:embed schema.graphql
var schemaSDL string

const maxQueryDepth = 8

func NewSchema(payments PaymentService, enrollments EnrollmentService) *graphql.Schema {
	return graphql.MustParseSchema(schemaSDL, NewResolver(payments, enrollments),
		graphql.MaxDepth(maxQueryDepth),
	)
}

// NewHandler serves POST /graphql. The principal is expected in the request
// context; anonymous requests reach the resolvers and are rejected there.
func NewHandler(payments PaymentService, enrollments EnrollmentService) http.Handler {
	return &relay.Handler{Schema: NewSchema(payments, enrollments)}
}
