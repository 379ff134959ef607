package errmodel

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewAndFrom(t *testing.T) {
	e := Validation("missing", "field missing", map[string]any{"field": "caller_id"})
	if e.Category != CategoryValidation || e.Code != "missing" {
		t.Fatalf("unexpected: %#v", e)
	}
	if got := From(e); got != e {
		t.Fatalf("From should return same error instance")
	}
}

func TestDeniedAndUnknownToolAreDistinct(t *testing.T) {
	d := Denied("agent-1", "create_ticket")
	u := UnknownTool("create_ticket")
	if d.Category != CategoryPolicy || d.Code != CodeForbidden {
		t.Fatalf("denied: %#v", d)
	}
	if u.Category != CategoryValidation || u.Code != CodeNotFound {
		t.Fatalf("unknown: %#v", u)
	}
	if HTTPStatus(d) != 403 {
		t.Fatalf("denied status=%d", HTTPStatus(d))
	}
	if HTTPStatus(u) != 404 {
		t.Fatalf("unknown status=%d", HTTPStatus(u))
	}
}

func TestToolPreservesCause(t *testing.T) {
	cause := errors.New("upstream exploded")
	e := Tool(CodeExecutor, "tool execution failed", map[string]any{"tool": "http.get"}, cause)
	if len(e.Causes) != 1 {
		t.Fatalf("causes=%d want 1", len(e.Causes))
	}
	if !strings.Contains(e.Causes[0].Message, "upstream exploded") {
		t.Fatalf("cause lost: %#v", e.Causes[0])
	}
}

func TestTimeoutStatus(t *testing.T) {
	e := Timeout("slow.tool", nil)
	if e.Code != CodeTimeout {
		t.Fatalf("code=%s", e.Code)
	}
	if HTTPStatus(e) != 504 {
		t.Fatalf("status=%d want 504", HTTPStatus(e))
	}
}

func TestWriteHTTP_StatusAndEnvelope(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	WriteHTTP(rr, req, Validation("bad_json", "oops", nil))
	if rr.Code != 400 {
		t.Fatalf("status=%d want 400", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "\"category\":\"validation\"") {
		t.Fatalf("body missing category: %s", body)
	}
	if !strings.Contains(body, "\"code\":\"bad_json\"") {
		t.Fatalf("body missing code: %s", body)
	}
}
