package pool

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

type stubRepository struct {
	value any
	err   error
}

func (s *stubRepository) Get(context.Context, string) (any, error) {
	return s.value, s.err
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  []string
	}{
		{"string list", []string{"a@x.com", "", "b@x.com"}, []string{"a@x.com", "b@x.com"}},
		{"json array", []any{"a@x.com", "", "b@x.com", 42}, []string{"a@x.com", "b@x.com"}},
		{"comma string with empties", "a@x.com, b@x.com,,", []string{"a@x.com", "b@x.com"}},
		{"single address string", "a@x.com", []string{"a@x.com"}},
		{"whitespace only string", " , ", nil},
		{"wrong type", map[string]any{"a@x.com": true}, nil},
		{"nil", nil, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Normalize(tc.value))
		})
	}
}

func TestResolveUsesStoredPool(t *testing.T) {
	repo := &stubRepository{value: "a@x.com, b@x.com,,"}
	r := NewResolver(repo, DefaultRevisionPool, quietLogger())

	got := r.Resolve(context.Background(), RevisionPoolName)
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, got)
}

func TestResolveFallsBackOnReadError(t *testing.T) {
	repo := &stubRepository{err: fmt.Errorf("store unreachable")}
	fallback := []string{"ops@x.com"}
	r := NewResolver(repo, fallback, quietLogger())

	got := r.Resolve(context.Background(), RevisionPoolName)
	assert.Equal(t, fallback, got)
}

func TestResolveFallsBackOnEmptyValue(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"missing pool", nil},
		{"empty array", []any{}},
		{"wrong type", 7},
		{"blank string", "  "},
	}
	fallback := []string{"ops@x.com"}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := NewResolver(&stubRepository{value: tc.value}, fallback, quietLogger())
			assert.Equal(t, fallback, r.Resolve(context.Background(), RevisionPoolName))
		})
	}
}

func TestResolveCopiesFallback(t *testing.T) {
	fallback := []string{"ops@x.com"}
	r := NewResolver(&stubRepository{}, fallback, quietLogger())

	got := r.Resolve(context.Background(), RevisionPoolName)
	got[0] = "mutated@x.com"
	assert.Equal(t, "ops@x.com", fallback[0])
}
