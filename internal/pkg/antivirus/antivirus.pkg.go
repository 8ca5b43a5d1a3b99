package antivirus

import "context"

type Verdict string

const (
	Clean    Verdict = "clean"
	Infected Verdict = "infected"
)

// Scanner inspects a file on scratch storage before it is published.
type Scanner interface {
	Scan(ctx context.Context, path string) (Verdict, error)
}

// Noop passes every file. It stands in until a real engine is wired.
type Noop struct{}

func (Noop) Scan(ctx context.Context, _ string) (Verdict, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return Clean, nil
}
