package e2e_test

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/szabolcsj/weblabor/internal/api"
	"github.com/szabolcsj/weblabor/internal/factory"
	"github.com/szabolcsj/weblabor/internal/storage/memory"
	"github.com/szabolcsj/weblabor/internal/web"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
	tokenFile  string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(projectRoot, "bin", "weblabor-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/weblabor")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	// Create temp token file
	tokenFile := filepath.Join(t.TempDir(), "token")

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
		tokenFile:  tokenFile,
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--token-file", r.tokenFile,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func (r *cliRunner) runWithToken(token string, args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--token", token,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// testServer manages a real HTTP server for e2e tests
type testServer struct {
	addr     string
	storage  *memory.Storage
	shutdown func()
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	app, err := factory.New(context.Background(), factory.Config{
		BcryptCost: 4,
		Logger:     logger,
	})
	require.NoError(t, err)

	apiRouter := api.NewRouter(api.RouterConfig{
		Logger:           logger,
		AuthService:      app.AuthService,
		ContactService:   app.ContactService,
		InventoryService: app.InventoryService,
	})

	webRouter := web.NewRouter(web.RouterConfig{
		Logger:           logger,
		AuthService:      app.AuthService,
		ContactService:   app.ContactService,
		InventoryService: app.InventoryService,
		Views:            app.Views,
	})

	// Combine routers
	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)
	mux.Handle("/", webRouter)

	server := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	// Wait for server to be ready
	serverURL := "http://" + addr
	waitForServer(t, serverURL+"/api/v1/health")

	memStore, ok := app.Storage.(*memory.Storage)
	require.True(t, ok)

	return &testServer{
		addr:    serverURL,
		storage: memStore,
		shutdown: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
		},
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

// promoteToAdmin flips the admin flag directly in storage, bypassing the
// API's admin-only guard so tests can bootstrap their first admin.
func (ts *testServer) promoteToAdmin(t *testing.T, username string) {
	t.Helper()

	ctx := context.Background()
	user, err := ts.storage.GetUserByUsername(ctx, username)
	require.NoError(t, err)
	require.NoError(t, ts.storage.SetUserAdmin(ctx, user.ID, true))
}

// Response types for JSON parsing
type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

type authResponse struct {
	User         userResponse `json:"user"`
	SessionToken string       `json:"session_token"`
	ExpiresAt    time.Time    `json:"expires_at"`
}

type messageResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Body  string `json:"body"`
}

type processorResponse struct {
	ID    int64  `json:"id"`
	Brand string `json:"brand"`
	Model string `json:"model"`
}

type machineResponse struct {
	ID       int64  `json:"id"`
	Brand    string `json:"brand"`
	Model    string `json:"model"`
	CPUBrand string `json:"cpu_brand"`
	CPUModel string `json:"cpu_model"`
	OSName   string `json:"os_name"`
	Price    int    `json:"price"`
}

type healthResponse struct {
	Status string `json:"status"`
}

type textMessageResponse struct {
	Message string `json:"message"`
}

// Tests

func TestCLI_HealthCheck(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("health")
	require.NoError(t, err, "output: %s", output)

	var resp healthResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestCLI_AuthCommands(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Register
	output, err := cli.run("auth", "register", "--user", "alice", "--pass", "secret123")
	require.NoError(t, err, "output: %s", output)

	var authResp authResponse
	require.NoError(t, json.Unmarshal([]byte(output), &authResp))
	assert.Equal(t, "alice", authResp.User.Username)
	assert.False(t, authResp.User.IsAdmin)
	assert.NotEmpty(t, authResp.SessionToken)

	// whoami (token should be saved in token file)
	output, err = cli.run("auth", "whoami")
	require.NoError(t, err, "output: %s", output)

	var me userResponse
	require.NoError(t, json.Unmarshal([]byte(output), &me))
	assert.Equal(t, "alice", me.Username)
	assert.Equal(t, authResp.User.ID, me.ID)

	// Logout clears the session and token file
	output, err = cli.run("auth", "logout")
	require.NoError(t, err, "output: %s", output)

	var msg textMessageResponse
	require.NoError(t, json.Unmarshal([]byte(output), &msg))
	assert.Equal(t, "Logged out", msg.Message)

	output, err = cli.run("auth", "whoami")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "unauthorized")

	// Login again
	output, err = cli.run("auth", "login", "--user", "alice", "--pass", "secret123")
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &authResp))
	assert.Equal(t, "alice", authResp.User.Username)

	output, err = cli.run("auth", "whoami")
	require.NoError(t, err, "output: %s", output)
}

func TestCLI_LoginWrongPassword(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("auth", "register", "--user", "alice", "--pass", "secret123")
	require.NoError(t, err, "output: %s", output)

	output, err = cli.run("auth", "login", "--user", "alice", "--pass", "wrong")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "invalid username or password")
}

func TestCLI_MessagesCommands(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("auth", "register", "--user", "alice", "--pass", "secret123")
	require.NoError(t, err, "output: %s", output)
	var authResp authResponse
	require.NoError(t, json.Unmarshal([]byte(output), &authResp))
	token := authResp.SessionToken

	// Sending a message needs no session
	output, err = cli.run("messages", "send",
		"--name", "Teszt Elek",
		"--email", "teszt@example.com",
		"--phone", "+36 30 123 4567",
		"--body", "Hello from the CLI")
	require.NoError(t, err, "output: %s", output)

	var sent messageResponse
	require.NoError(t, json.Unmarshal([]byte(output), &sent))
	assert.NotZero(t, sent.ID)
	assert.Equal(t, "Teszt Elek", sent.Name)

	// Listing does
	output, err = cli.runWithToken(token, "messages", "list")
	require.NoError(t, err, "output: %s", output)

	var messages []messageResponse
	require.NoError(t, json.Unmarshal([]byte(output), &messages))
	require.Len(t, messages, 1)
	assert.Equal(t, "Hello from the CLI", messages[0].Body)
}

func TestCLI_MachinesList(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("machines")
	require.NoError(t, err, "output: %s", output)

	var machines []machineResponse
	require.NoError(t, json.Unmarshal([]byte(output), &machines))
	require.Len(t, machines, 4)

	brands := make([]string, 0, len(machines))
	for _, m := range machines {
		assert.NotEmpty(t, m.CPUBrand)
		assert.NotEmpty(t, m.CPUModel)
		assert.NotEmpty(t, m.OSName)
		brands = append(brands, m.Brand)
	}
	assert.Contains(t, brands, "Dell")
	assert.Contains(t, brands, "Lenovo")
}

func TestCLI_ProcessorCommands(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("auth", "register", "--user", "root", "--pass", "secret123")
	require.NoError(t, err, "output: %s", output)
	var authResp authResponse
	require.NoError(t, json.Unmarshal([]byte(output), &authResp))
	token := authResp.SessionToken

	// Not an admin yet
	output, err = cli.runWithToken(token, "processor", "list")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "admin")

	ts.promoteToAdmin(t, "root")

	// List the seeded catalogue
	output, err = cli.runWithToken(token, "processor", "list")
	require.NoError(t, err, "output: %s", output)

	var procs []processorResponse
	require.NoError(t, json.Unmarshal([]byte(output), &procs))
	require.Len(t, procs, 4)

	// Create
	output, err = cli.runWithToken(token, "processor", "create", "--brand", "Intel", "--model", "Celeron G6900")
	require.NoError(t, err, "output: %s", output)

	var created processorResponse
	require.NoError(t, json.Unmarshal([]byte(output), &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Celeron G6900", created.Model)

	// Get
	output, err = cli.runWithToken(token, "processor", "get", fmt.Sprintf("%d", created.ID))
	require.NoError(t, err, "output: %s", output)

	var got processorResponse
	require.NoError(t, json.Unmarshal([]byte(output), &got))
	assert.Equal(t, created.ID, got.ID)

	// Update
	output, err = cli.runWithToken(token, "processor", "update", fmt.Sprintf("%d", created.ID),
		"--brand", "Intel", "--model", "Pentium Gold G7400")
	require.NoError(t, err, "output: %s", output)

	var updated processorResponse
	require.NoError(t, json.Unmarshal([]byte(output), &updated))
	assert.Equal(t, "Pentium Gold G7400", updated.Model)

	// Delete
	output, err = cli.runWithToken(token, "processor", "delete", fmt.Sprintf("%d", created.ID))
	require.NoError(t, err, "output: %s", output)

	output, err = cli.runWithToken(token, "processor", "get", fmt.Sprintf("%d", created.ID))
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "not found")
}

func TestCLI_ProcessorDeleteInUse(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("auth", "register", "--user", "root", "--pass", "secret123")
	require.NoError(t, err, "output: %s", output)
	var authResp authResponse
	require.NoError(t, json.Unmarshal([]byte(output), &authResp))
	token := authResp.SessionToken

	ts.promoteToAdmin(t, "root")

	// All four seeded processors are referenced by machines
	output, err = cli.runWithToken(token, "processor", "list")
	require.NoError(t, err, "output: %s", output)
	var procs []processorResponse
	require.NoError(t, json.Unmarshal([]byte(output), &procs))
	require.NotEmpty(t, procs)

	output, err = cli.runWithToken(token, "processor", "delete", fmt.Sprintf("%d", procs[0].ID))
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "referenced")
}

func TestCLI_UserCommands(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("auth", "register", "--user", "root", "--pass", "secret123")
	require.NoError(t, err, "output: %s", output)
	var rootAuth authResponse
	require.NoError(t, json.Unmarshal([]byte(output), &rootAuth))
	rootToken := rootAuth.SessionToken

	output, err = cli.run("auth", "register", "--user", "alice", "--pass", "secret123")
	require.NoError(t, err, "output: %s", output)
	var aliceAuth authResponse
	require.NoError(t, json.Unmarshal([]byte(output), &aliceAuth))

	ts.promoteToAdmin(t, "root")

	// List users
	output, err = cli.runWithToken(rootToken, "user", "list")
	require.NoError(t, err, "output: %s", output)

	var users []userResponse
	require.NoError(t, json.Unmarshal([]byte(output), &users))
	require.Len(t, users, 2)

	// Promote alice via the API
	output, err = cli.runWithToken(rootToken, "user", "set-admin", fmt.Sprintf("%d", aliceAuth.User.ID), "--admin")
	require.NoError(t, err, "output: %s", output)

	// Her existing session sees the new role immediately
	output, err = cli.runWithToken(aliceAuth.SessionToken, "processor", "list")
	require.NoError(t, err, "output: %s", output)
}

func TestCLI_ErrorHandling(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// whoami without a session
	output, err := cli.run("auth", "whoami")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "unauthorized")

	// Unknown processor id
	output, err = cli.run("auth", "register", "--user", "root", "--pass", "secret123")
	require.NoError(t, err, "output: %s", output)
	var authResp authResponse
	require.NoError(t, json.Unmarshal([]byte(output), &authResp))

	ts.promoteToAdmin(t, "root")

	output, err = cli.runWithToken(authResp.SessionToken, "processor", "get", "9999")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "not found")
}
