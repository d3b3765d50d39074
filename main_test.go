package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"calcdesk/config"
	"calcdesk/domain"
)

// execute runs the command tree with args and returns stdout. Flag values
// are reset first since the commands are package-level.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func TestLoanCommand(t *testing.T) {
	out, err := execute(t, "loan", "--amount", "300000", "--rate", "6.5", "--months", "360")
	require.NoError(t, err)
	assert.Contains(t, out, "$1,896.20")
	assert.Contains(t, out, "monthly payment")
}

func TestLoanCommandJSON(t *testing.T) {
	out, err := execute(t, "loan", "--amount", "300000", "--rate", "6.5", "--months", "360", "--json")
	require.NoError(t, err)

	var result domain.LoanResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 1896.20, result.MonthlyPayment)
	assert.Equal(t, "en-US", result.Locale)
	assert.Empty(t, result.RecordID)
}

func TestLoanCommandRejectsInvalidInput(t *testing.T) {
	_, err := execute(t, "loan", "--amount", "0", "--rate", "6.5", "--months", "360")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoResult)
}

func TestROICommand(t *testing.T) {
	out, err := execute(t, "roi", "--investment", "10000", "--return", "12000", "--years", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "20.0%")
	assert.Contains(t, out, "9.54%")
}

func TestStampDutyCommand(t *testing.T) {
	out, err := execute(t, "stamp-duty", "--price", "400000")
	require.NoError(t, err)
	assert.Contains(t, out, "£7,500.00")
}

func TestFormatCommand(t *testing.T) {
	out, err := execute(t, "format", "currency", "1234567.89", "--locale", "en-IN")
	require.NoError(t, err)
	assert.Equal(t, "₹12,34,567.89\n", out)

	out, err = execute(t, "format", "date", "2026-03-01", "--locale", "en-US")
	require.NoError(t, err)
	assert.Equal(t, "03/01/2026\n", out)

	_, err = execute(t, "format", "currency", "lots")
	assert.ErrorIs(t, err, domain.ErrNoResult)
}

func TestLocalesCommand(t *testing.T) {
	out, err := execute(t, "locales")
	require.NoError(t, err)
	for _, tag := range []string{"en-US", "en-GB", "en-AU", "en-IN"} {
		assert.Contains(t, out, tag)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "calcdesk dev")
}

func TestNewAppServesHealthAndRecords(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	c, err := config.Load()
	require.NoError(t, err)
	c.Storage.Backend = config.BackendSQLite
	c.Storage.Path = filepath.Join(t.TempDir(), "calc.db")
	c.Cache.Backend = config.BackendMemory

	a, err := newApp(context.Background(), c, zap.NewNop())
	require.NoError(t, err)
	defer a.Close()

	srv := httptest.NewServer(a.handler)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Post(srv.URL+"/v1/tax/stamp-duty", "application/json",
		bytes.NewBufferString(`{"price": 400000}`))
	require.NoError(t, err)
	var result domain.BandedResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	resp.Body.Close()
	assert.Equal(t, 7500.0, result.Total)
	require.NotEmpty(t, result.RecordID)

	resp, err = http.Get(srv.URL + "/v1/records/" + result.RecordID)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAmountFlagsAcceptLocaleText(t *testing.T) {
	out, err := execute(t, "stamp-duty", "--price", "£400,000", "--locale", "en-GB")
	require.NoError(t, err)
	assert.Contains(t, out, "£7,500.00")

	out, err = execute(t, "loan", "--amount", "$300,000", "--rate", "6.5", "--months", "360")
	require.NoError(t, err)
	assert.Contains(t, out, "$1,896.20")

	out, err = execute(t, "roi", "--investment", "10,000", "--return", "12,000", "--years", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "9.54%")
}

func TestAmountFlagsRejectGarbage(t *testing.T) {
	_, err := execute(t, "loan", "--amount", "lots", "--rate", "6.5", "--months", "360")
	require.ErrorIs(t, err, domain.ErrNoResult)
	assert.Contains(t, err.Error(), "--amount")
}
