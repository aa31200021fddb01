package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"
)

// Server-generated identifiers. Employee ids and receipt numbers are
// uuid-derived 10-char tokens; UPCs and card numbers are digit strings
// generated retry-until-unused against the table.

func newEntityID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:10]
}

func randomDigits(n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "%d", rand.IntN(10))
	}
	return b.String()
}

// generateUnique draws candidates from gen until exists reports one unused.
// Collisions on a 12-digit space are vanishingly rare, so the loop almost
// always finishes on the first draw.
func generateUnique(ctx context.Context, gen func() string,
	exists func(context.Context, string) (bool, error)) (string, error) {
	for {
		candidate := gen()
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
}
