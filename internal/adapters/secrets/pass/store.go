package pass

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path"
	"strings"

	"github.com/bnema/careerhub/internal/domain"
	"github.com/bnema/careerhub/internal/ports"
)

const DefaultPrefix = "careerhub"

var ErrUnavailable = errors.New("pass command unavailable")

type runFunc func(ctx context.Context, input string, args ...string) (stdout string, stderr string, err error)

// Store reads API keys from the pass password manager. Keys live under
// <prefix>/<ref> and only the first line of an entry is used.
type Store struct {
	prefix string
	run    runFunc
}

var _ ports.SecretStore = (*Store)(nil)

func NewStore(prefix string) *Store {
	return &Store{prefix: strings.Trim(strings.TrimSpace(prefix), "/"), run: runPassCommand}
}

func (s *Store) Get(ctx context.Context, ref string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := s.entryName(ref)
	stdout, stderr, err := s.run(ctx, "", "show", name)
	if err != nil {
		return "", formatError("get", name, err, stderr)
	}

	firstLine, _, _ := strings.Cut(stdout, "\n")
	value := strings.TrimSpace(firstLine)
	if value == "" {
		return "", fmt.Errorf("pass entry %q is empty: %w", name, domain.ErrSecretNotFound)
	}

	return value, nil
}

func (s *Store) Put(ctx context.Context, ref string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	name := s.entryName(ref)
	_, stderr, err := s.run(ctx, value+"\n", "insert", "-m", "-f", name)
	if err != nil {
		return formatError("put", name, err, stderr)
	}

	return nil
}

func (s *Store) Delete(ctx context.Context, ref string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	name := s.entryName(ref)
	_, stderr, err := s.run(ctx, "", "rm", "-f", name)
	if err != nil {
		return formatError("delete", name, err, stderr)
	}

	return nil
}

func (s *Store) entryName(ref string) string {
	ref = strings.Trim(strings.TrimSpace(ref), "/")
	if s.prefix == "" {
		return ref
	}
	return path.Join(s.prefix, ref)
}

func runPassCommand(ctx context.Context, input string, args ...string) (string, string, error) {
	bin, err := exec.LookPath("pass")
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", "", ErrUnavailable
		}
		return "", "", fmt.Errorf("locate pass command: %w", err)
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	if input != "" {
		cmd.Stdin = strings.NewReader(input)
	}

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	return stdout.String(), strings.TrimSpace(stderr.String()), err
}

func formatError(op string, name string, err error, stderr string) error {
	if strings.Contains(stderr, "is not in the password store") {
		return fmt.Errorf("pass %s %q: %w", op, name, domain.ErrSecretNotFound)
	}
	if stderr == "" {
		return fmt.Errorf("pass %s %q: %w", op, name, err)
	}

	return fmt.Errorf("pass %s %q: %w: %s", op, name, err, stderr)
}
