package cli

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/zipweather/internal/app"
	"github.com/specialistvlad/zipweather/internal/report"
	"github.com/specialistvlad/zipweather/internal/weather"
	"github.com/stretchr/testify/require"
)

func envOf(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestParse(t *testing.T) {
	t.Parallel()

	withKey := map[string]string{app.APIKeyEnv: "secret"}

	testCases := []struct {
		name           string
		args           []string
		env            map[string]string
		expectExit     bool
		expectCode     int
		expectedConfig *app.Config
		checkOutput    func(t *testing.T, stdout, stderr string)
	}{
		{
			name: "Happy path with all flags",
			args: []string{
				"-color=never",
				"--log-level=debug",
				"--log-format=json",
				"-endpoint", "http://localhost:8080/weather",
				"-zipkin-url", "http://zipkin:9411/api/v2/spans",
				"90210",
			},
			env: withKey,
			expectedConfig: &app.Config{
				Query:     weather.Query{PostalCode: 90210, CountryCode: "us", APIKey: "secret"},
				Endpoint:  "http://localhost:8080/weather",
				ColorMode: report.ColorNever,
				LogFormat: "json",
				LogLevel:  "debug",
				ZipkinURL: "http://zipkin:9411/api/v2/spans",
			},
		},
		{
			name: "Positional argument and defaults",
			args: []string{"10001"},
			env:  map[string]string{app.APIKeyEnv: "secret", app.ZipkinURLEnv: "http://collector/spans"},
			expectedConfig: &app.Config{
				Query:     weather.Query{PostalCode: 10001, CountryCode: "us", APIKey: "secret"},
				Endpoint:  weather.DefaultEndpoint,
				ColorMode: report.ColorAuto,
				LogFormat: "text",
				LogLevel:  "warn",
				ZipkinURL: "http://collector/spans",
			},
		},
		{
			name: "Extra arguments are ignored",
			args: []string{"60614", "ignored"},
			env:  withKey,
			expectedConfig: &app.Config{
				Query:     weather.Query{PostalCode: 60614, CountryCode: "us", APIKey: "secret"},
				Endpoint:  weather.DefaultEndpoint,
				ColorMode: report.ColorAuto,
				LogFormat: "text",
				LogLevel:  "warn",
			},
		},
		{
			name:       "Help flag triggers clean exit",
			args:       []string{"-h"},
			env:        withKey,
			expectExit: true,
			checkOutput: func(t *testing.T, stdout, stderr string) {
				require.Contains(t, stdout, "Usage:")
				require.Contains(t, stdout, app.APIKeyEnv)
				require.Empty(t, stderr)
			},
		},
		{
			name:       "Version flag triggers clean exit",
			args:       []string{"-version"},
			expectExit: true,
			checkOutput: func(t *testing.T, stdout, stderr string) {
				require.Contains(t, stdout, "zipweather "+app.Version)
				require.Empty(t, stderr)
			},
		},
		{
			name:       "Missing postal code prints usage to stderr and fails",
			args:       []string{},
			env:        withKey,
			expectCode: ExitInvalidArgument,
			checkOutput: func(t *testing.T, stdout, stderr string) {
				require.Empty(t, stdout)
				require.Contains(t, stderr, "Usage:")
			},
		},
		{
			name: "Largest 32-bit postal code",
			args: []string{"2147483647"},
			env:  withKey,
			expectedConfig: &app.Config{
				Query:     weather.Query{PostalCode: 2147483647, CountryCode: "us", APIKey: "secret"},
				Endpoint:  weather.DefaultEndpoint,
				ColorMode: report.ColorAuto,
				LogFormat: "text",
				LogLevel:  "warn",
			},
		},
		{
			name:       "Postal code beyond 32 bits",
			args:       []string{"3000000000"},
			env:        withKey,
			expectCode: ExitInvalidArgument,
		},
		{
			name:       "Negative postal code beyond 32 bits",
			args:       []string{"--", "-2147483649"},
			env:        withKey,
			expectCode: ExitInvalidArgument,
		},
		{
			name:       "Non-numeric postal code",
			args:       []string{"beverly-hills"},
			env:        withKey,
			expectCode: ExitInvalidArgument,
		},
		{
			name:       "Decimal postal code",
			args:       []string{"902.10"},
			env:        withKey,
			expectCode: ExitInvalidArgument,
		},
		{
			name:       "Missing API key",
			args:       []string{"90210"},
			env:        map[string]string{},
			expectCode: ExitMissingCredential,
		},
		{
			name:       "Empty API key",
			args:       []string{"90210"},
			env:        map[string]string{app.APIKeyEnv: ""},
			expectCode: ExitMissingCredential,
		},
		{
			name:       "Invalid postal code wins over missing key",
			args:       []string{"abc"},
			env:        map[string]string{},
			expectCode: ExitInvalidArgument,
		},
		{
			name:       "Unknown flag",
			args:       []string{"--this-is-not-a-valid-flag", "90210"},
			env:        withKey,
			expectCode: ExitInvalidArgument,
			checkOutput: func(t *testing.T, stdout, stderr string) {
				require.Empty(t, stdout)
				require.Contains(t, stderr, "this-is-not-a-valid-flag")
				require.Contains(t, stderr, "Usage:")
			},
		},
		{
			name:       "Invalid color mode",
			args:       []string{"-color=rainbow", "90210"},
			env:        withKey,
			expectCode: ExitInvalidArgument,
		},
		{
			name:       "Invalid log level",
			args:       []string{"--log-level=foo", "90210"},
			env:        withKey,
			expectCode: ExitInvalidArgument,
		},
		{
			name:       "Invalid log format",
			args:       []string{"--log-format=yaml", "90210"},
			env:        withKey,
			expectCode: ExitInvalidArgument,
		},
		{
			name:       "Empty endpoint",
			args:       []string{"-endpoint=", "90210"},
			env:        withKey,
			expectCode: ExitInvalidArgument,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

			// --- Act ---
			cfg, shouldExit, err := Parse(tc.args, envOf(tc.env), out, errOut)

			// --- Assert ---
			if tc.checkOutput != nil {
				tc.checkOutput(t, out.String(), errOut.String())
			}

			if tc.expectCode != 0 {
				require.Error(t, err)
				var exitErr *ExitError
				require.True(t, errors.As(err, &exitErr), "Expected error to be of type ExitError")
				require.Equal(t, tc.expectCode, exitErr.Code)
				require.Equal(t, tc.expectCode, ExitCodeFor(err))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expectExit, shouldExit)

			if tc.expectedConfig != nil {
				if diff := cmp.Diff(tc.expectedConfig, cfg); diff != "" {
					t.Errorf("Config mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestParse_ErrorsWrapSentinels(t *testing.T) {
	t.Parallel()

	_, _, err := Parse([]string{"nope"}, envOf(nil), &bytes.Buffer{}, &bytes.Buffer{})
	require.ErrorIs(t, err, app.ErrInvalidArgument)

	_, _, err = Parse([]string{"90210"}, envOf(nil), &bytes.Buffer{}, &bytes.Buffer{})
	require.ErrorIs(t, err, app.ErrMissingCredential)
	require.Contains(t, err.Error(), app.APIKeyEnv)
}

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		err  error
		want int
	}{
		{name: "Nil", err: nil, want: ExitOK},
		{name: "Explicit exit error", err: &ExitError{Code: 7, Message: "x"}, want: 7},
		{name: "Invalid argument", err: fmt.Errorf("wrap: %w", app.ErrInvalidArgument), want: ExitInvalidArgument},
		{name: "Missing credential", err: app.ErrMissingCredential, want: ExitMissingCredential},
		{name: "Fetch error", err: fmt.Errorf("lookup: %w", &weather.FetchError{Op: "status", StatusCode: 500, Err: errors.New("boom")}), want: ExitFetchFailed},
		{name: "Anything else", err: errors.New("unexpected"), want: ExitFailure},
	}

	for _, tc := range testCases {
		tc := tc
		require.Equal(t, tc.want, ExitCodeFor(tc.err), tc.name)
	}
}
