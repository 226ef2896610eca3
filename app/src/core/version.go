package core

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"wip-service/app/src/domain"
	"wip-service/app/src/shared/iso8601"
)

// VersionService resolves the release identity of the running binary from a
// version file containing "<tagVersion> <releaseTimestamp>". The file is read
// once; the result, success or failure, is cached for the process lifetime.
//
// A load failure never propagates as an error. Instead the tag field carries
// a diagnostic of the form "<errorType>(<details>)@<path>" and the release
// timestamp is synthesized from the clock, so callers always get a printable
// Version.
type VersionService struct {
	path   string
	clock  domain.Clock
	logger Logger

	once    sync.Once
	version domain.Version
}

func NewVersionService(path string, clock domain.Clock, logger Logger) *VersionService {
	return &VersionService{path: path, clock: clock, logger: logger}
}

func (s *VersionService) Version(ctx context.Context) domain.Version {
	s.once.Do(func() {
		s.version = s.load(ctx)
	})
	return s.version
}

func (s *VersionService) load(ctx context.Context) domain.Version {
	raw, err := readVersionFile(s.path)
	if err != nil {
		if errors.Is(err, domain.ErrNoVersionFile) {
			return s.errorVersion(ctx, "noFile", "")
		}
		return s.errorVersion(ctx, "fileLoadError", err.Error())
	}

	parts := strings.SplitN(strings.TrimSpace(raw), " ", 3)
	if len(parts) != 2 {
		return s.errorVersion(ctx, "fileErrorParts", strconv.Itoa(len(parts)))
	}

	tag, err := validateTagVersion(parts[0])
	if err != nil {
		return s.errorVersion(ctx, "fileErrorTagVersion", err.Error())
	}

	stamp, err := normalizeReleaseTimestamp(parts[1])
	if err != nil {
		return s.errorVersion(ctx, "fileErrorReleaseTimestamp", err.Error())
	}

	if s.logger != nil {
		s.logger.Printf(ctx, "loaded version %s %s from %s", stamp, tag, s.path)
	}
	return domain.Version{TagVersion: tag, ReleaseTimestamp: stamp}
}

func (s *VersionService) errorVersion(ctx context.Context, errorType, details string) domain.Version {
	text := errorType
	if details != "" {
		text += "(" + details + ")"
	}
	text += "@" + s.path

	if s.logger != nil {
		s.logger.Printf(ctx, "version load failed: %s", text)
	}
	return domain.Version{
		TagVersion:       text,
		ReleaseTimestamp: iso8601.FromEpochMillis(s.clock.NowMillis()).ToMinute().Value(),
	}
}

func readVersionFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", domain.ErrNoVersionFile
		}
		return "", err
	}
	return string(data), nil
}

// validateTagVersion checks the release tag grammar: a leading 'v', a two
// digit major, a minor of 1-12, and a patch of up to five digits.
func validateTagVersion(tag string) (string, error) {
	if !strings.HasPrefix(tag, "v") {
		return "", fmt.Errorf("tag version '%s' does not start with 'v'", tag)
	}

	parts := strings.Split(tag[1:], ".")
	if len(parts) != 3 {
		return "", fmt.Errorf("tag version '%s' does not have 3 dot separated fields", tag)
	}
	if !allDigits(parts[0]) || len(parts[0]) != 2 {
		return "", fmt.Errorf("tag version major '%s' is not exactly 2 digits", parts[0])
	}
	if !allDigits(parts[1]) || len(parts[1]) > 2 {
		return "", fmt.Errorf("tag version minor '%s' is not 1 or 2 digits", parts[1])
	}
	if minor, _ := strconv.Atoi(parts[1]); minor < 1 || minor > 12 {
		return "", fmt.Errorf("tag version minor '%s' is not between 1 and 12", parts[1])
	}
	if !allDigits(parts[2]) || len(parts[2]) < 1 || len(parts[2]) > 5 {
		return "", fmt.Errorf("tag version patch '%s' is not 1 to 5 digits", parts[2])
	}
	return tag, nil
}

func normalizeReleaseTimestamp(token string) (string, error) {
	ts := iso8601.Parse(token).ToMinute()
	if ts.HasError() {
		return "", errors.New(ts.Err())
	}
	return ts.Value(), nil
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

var _ domain.VersionProvider = (*VersionService)(nil)
