package web_test

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrudRequiresAdmin(t *testing.T) {
	ts := newWebTestServer(t)
	ts.register("alice", "secret123")

	rr := ts.get("/crud")
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/notAuthorizedAdmin", rr.Header().Get("Location"))

	rr = ts.post("/crud/new", url.Values{"gyarto": {"Intel"}, "tipus": {"Xeon"}})
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/notAuthorizedAdmin", rr.Header().Get("Location"))
}

func TestCrudListShowsSeededProcessors(t *testing.T) {
	ts := newWebTestServer(t)
	ts.registerAdmin("root", "secret123")

	rr := ts.get("/crud")
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	rows := doc.Find("table#processors tbody tr")
	assert.Equal(t, 4, rows.Length())
	assert.Contains(t, rows.Text(), "Ryzen 7 7800X3D")
}

func TestCrudCreate(t *testing.T) {
	ts := newWebTestServer(t)
	ts.registerAdmin("root", "secret123")

	rr := ts.post("/crud/new", url.Values{
		"gyarto": {"Intel"},
		"tipus":  {"Core i9-14900K"},
	})
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/crud", rr.Header().Get("Location"))

	rr = ts.get("/crud")
	doc := parseHTML(rr.Body)
	rows := doc.Find("table#processors tbody tr")
	assert.Equal(t, 5, rows.Length())
	assert.Contains(t, rows.Text(), "Core i9-14900K")
}

func TestCrudCreateValidation(t *testing.T) {
	ts := newWebTestServer(t)
	ts.registerAdmin("root", "secret123")

	rr := ts.post("/crud/new", url.Values{
		"gyarto": {"Intel"},
		"tipus":  {"   "},
	})
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assert.Contains(t, doc.Find("p.error").Text(), "required")
	// Nothing was created
	rr = ts.get("/crud")
	doc = parseHTML(rr.Body)
	assert.Equal(t, 4, doc.Find("table#processors tbody tr").Length())
}

func TestCrudEdit(t *testing.T) {
	ts := newWebTestServer(t)
	ts.registerAdmin("root", "secret123")

	procs, err := ts.app.InventoryService.ListProcessors(t.Context())
	require.NoError(t, err)
	require.NotEmpty(t, procs)
	target := procs[len(procs)-1]

	// The edit form is pre-filled
	rr := ts.get(fmt.Sprintf("/crud/edit/%d", target.ID))
	require.Equal(t, http.StatusOK, rr.Code)
	doc := parseHTML(rr.Body)
	val, _ := doc.Find(`input[name="gyarto"]`).Attr("value")
	assert.Equal(t, target.Brand, val)

	rr = ts.post(fmt.Sprintf("/crud/edit/%d", target.ID), url.Values{
		"gyarto": {"AMD"},
		"tipus":  {"Ryzen 9 9950X"},
	})
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/crud", rr.Header().Get("Location"))

	updated, err := ts.app.InventoryService.GetProcessor(t.Context(), target.ID)
	require.NoError(t, err)
	assert.Equal(t, "AMD", updated.Brand)
	assert.Equal(t, "Ryzen 9 9950X", updated.Model)
}

func TestCrudEditUnknownProcessor(t *testing.T) {
	ts := newWebTestServer(t)
	ts.registerAdmin("root", "secret123")

	rr := ts.get("/crud/edit/9999")
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCrudDelete(t *testing.T) {
	ts := newWebTestServer(t)
	ts.registerAdmin("root", "secret123")

	// Create an unreferenced processor and delete it
	created, err := ts.app.InventoryService.CreateProcessor(t.Context(), "Intel", "Celeron G6900")
	require.NoError(t, err)

	rr := ts.post(fmt.Sprintf("/crud/delete/%d", created.ID), nil)
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/crud", rr.Header().Get("Location"))

	_, err = ts.app.InventoryService.GetProcessor(t.Context(), created.ID)
	require.Error(t, err)
}

func TestCrudDeleteReferencedProcessor(t *testing.T) {
	ts := newWebTestServer(t)
	ts.registerAdmin("root", "secret123")

	// Every seeded processor is referenced by a machine
	procs, err := ts.app.InventoryService.ListProcessors(t.Context())
	require.NoError(t, err)
	require.NotEmpty(t, procs)

	rr := ts.post(fmt.Sprintf("/crud/delete/%d", procs[0].ID), nil)
	require.Equal(t, http.StatusConflict, rr.Code)

	doc := parseHTML(rr.Body)
	assert.Contains(t, doc.Find("p.error").Text(), "referenced")
	// The processor is still there
	assert.Equal(t, len(procs), doc.Find("table#processors tbody tr").Length())
}
