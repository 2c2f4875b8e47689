//go:build integration

package integration_test

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/spf13/afero"

	"github.com/agentx-labs/devkit/internal/actions"
	"github.com/agentx-labs/devkit/internal/docstore"
	"github.com/agentx-labs/devkit/internal/prompts"
	"github.com/agentx-labs/devkit/internal/router"
	"github.com/agentx-labs/devkit/internal/runtime"
	"github.com/agentx-labs/devkit/internal/scaffold"
	"github.com/agentx-labs/devkit/internal/server"
)

// fakeNPM stands in for npx/npm: generators and "npm init" write a minimal
// package.json into the working directory; installs succeed silently.
type fakeNPM struct {
	mu    sync.Mutex
	lines []string
}

func (f *fakeNPM) Run(_ context.Context, dir, name string, args ...string) (*runtime.Output, error) {
	line := runtime.CommandLine(name, args...)
	f.mu.Lock()
	f.lines = append(f.lines, line)
	f.mu.Unlock()

	if strings.HasPrefix(line, "npm init") || name == "npx" {
		pkg := fmt.Sprintf("{\n  \"name\": %q,\n  \"version\": \"1.0.0\"\n}\n", filepath.Base(dir))
		if err := os.WriteFile(filepath.Join(dir, "package.json"), []byte(pkg), 0644); err != nil {
			return nil, err
		}
	}
	return &runtime.Output{Stdout: "ok\n"}, nil
}

// client drives a server instance over in-memory pipes.
type client struct {
	t      *testing.T
	in     *io.PipeWriter
	out    *bufio.Scanner
	done   chan error
	nextID int
}

type rpcResponse struct {
	ID     int             `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// startServer wires the full stack on the real filesystem with a fake
// package manager.
func startServer(t *testing.T) (*client, *fakeNPM) {
	t.Helper()

	npm := &fakeNPM{}
	docs := docstore.New()
	orch, err := scaffold.New(scaffold.Options{Fs: afero.NewOsFs(), Runner: npm, Docs: docs})
	if err != nil {
		t.Fatal(err)
	}
	tools, err := actions.Bindings(orch)
	if err != nil {
		t.Fatal(err)
	}
	engine, err := prompts.New()
	if err != nil {
		t.Fatal(err)
	}
	rt, err := router.New(tools, engine, docs, nil)
	if err != nil {
		t.Fatal(err)
	}

	inR, inW := io.Pipe()
	outR, outW := io.Pipe()
	c := &client{t: t, in: inW, out: bufio.NewScanner(outR), done: make(chan error, 1)}
	c.out.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)

	srv := server.New(rt, server.Info{Name: "devkit-scaffolder", Version: "test"}, nil)
	go func() {
		err := srv.Serve(context.Background(), inR, outW)
		outW.Close()
		c.done <- err
	}()

	t.Cleanup(func() {
		inW.Close()
		// Drain anything left so the server can finish writing.
		go io.Copy(io.Discard, outR)
		select {
		case err := <-c.done:
			if err != nil {
				t.Errorf("Serve() error: %v", err)
			}
		case <-time.After(5 * time.Second):
			t.Error("server did not stop")
		}
	})
	return c, npm
}

// call sends one request and waits for its response. Requests are issued
// one at a time, so the next line is the matching response.
func (c *client) call(method string, params interface{}) rpcResponse {
	c.t.Helper()
	c.nextID++
	req := map[string]interface{}{"jsonrpc": "2.0", "id": c.nextID, "method": method}
	if params != nil {
		req["params"] = params
	}
	data, err := json.Marshal(req)
	if err != nil {
		c.t.Fatal(err)
	}
	if _, err := c.in.Write(append(data, '\n')); err != nil {
		c.t.Fatalf("writing request: %v", err)
	}
	if !c.out.Scan() {
		c.t.Fatalf("no response to %s: %v", method, c.out.Err())
	}
	var resp rpcResponse
	if err := json.Unmarshal(c.out.Bytes(), &resp); err != nil {
		c.t.Fatalf("decoding response %s: %v", c.out.Text(), err)
	}
	if resp.ID != c.nextID {
		c.t.Fatalf("response id %d, want %d", resp.ID, c.nextID)
	}
	return resp
}

// callTool invokes an action and returns its text, failing on error.
func (c *client) callTool(name string, args map[string]interface{}) string {
	c.t.Helper()
	resp := c.call("tools/call", map[string]interface{}{"name": name, "arguments": args})
	if resp.Error != nil {
		c.t.Fatalf("%s failed: [%d] %s", name, resp.Error.Code, resp.Error.Message)
	}
	var res struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.Unmarshal(resp.Result, &res); err != nil {
		c.t.Fatal(err)
	}
	if len(res.Content) != 1 || res.Content[0].Type != "text" {
		c.t.Fatalf("unexpected content: %s", resp.Result)
	}
	return res.Content[0].Text
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// readFile returns a file's content, failing the test if it cannot be read.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertDirExists fails the test if the directory does not exist.
func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s (error: %v)", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory, but it is a file", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
