package tilemapapi_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/beka-birhanu/vinom-tilemap/api"
	api_i "github.com/beka-birhanu/vinom-tilemap/api/i"
	tilemapapi "github.com/beka-birhanu/vinom-tilemap/api/tilemap"
	dmn "github.com/beka-birhanu/vinom-tilemap/domain"
	"github.com/beka-birhanu/vinom-tilemap/tilemap"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMapService struct {
	maps      map[uuid.UUID]*dmn.Map
	createErr error
}

func (f *fakeMapService) Create(_ context.Context, name string, cells [][]tilemap.MazeCell) (*dmn.Map, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	m, err := dmn.NewMap(name, cells)
	if err != nil {
		return nil, err
	}
	f.maps[m.ID] = m
	return m, nil
}

func (f *fakeMapService) ByID(_ context.Context, id uuid.UUID) (*dmn.Map, error) {
	if m, ok := f.maps[id]; ok {
		return m, nil
	}
	return nil, dmn.ErrMapNotFound
}

func requireToken(c *gin.Context) {
	if c.GetHeader("Authorization") != "Bearer ok" {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	c.Next()
}

func newServer(t *testing.T, svc *fakeMapService) http.Handler {
	t.Helper()
	controller, err := tilemapapi.NewMapController(svc)
	require.NoError(t, err)
	return api.NewRouter(api.Config{
		BaseURL:                 "/api",
		Mode:                    gin.TestMode,
		Controllers:             []api_i.Controller{controller},
		AuthorizationMiddleware: requireToken,
	}).Engine()
}

func post(t *testing.T, h http.Handler, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/maps", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func corridor() [][]tilemap.MazeCell {
	return [][]tilemap.MazeCell{
		{{X: 0, Y: 0, Walls: []string{"north", "west", "south"}}},
		{{X: 1, Y: 0, Walls: []string{"north", "east", "south"}}},
	}
}

func TestNewMapController(t *testing.T) {
	_, err := tilemapapi.NewMapController(nil)
	assert.Error(t, err)
}

func TestCreateMap(t *testing.T) {
	t.Run("Requires a token", func(t *testing.T) {
		h := newServer(t, &fakeMapService{maps: map[uuid.UUID]*dmn.Map{}})
		w := post(t, h, tilemapapi.CreateMapRequest{Name: "corridor", Cells: corridor()}, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Creates the map", func(t *testing.T) {
		h := newServer(t, &fakeMapService{maps: map[uuid.UUID]*dmn.Map{}})
		w := post(t, h, tilemapapi.CreateMapRequest{Name: "corridor", Cells: corridor()}, "ok")
		require.Equal(t, http.StatusCreated, w.Code)

		var res tilemapapi.MapResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, "corridor", res.Name)
		assert.Equal(t, 4, res.Rows)
		assert.Equal(t, 7, res.Cols)
		assert.Len(t, res.Grid, 4)
	})

	t.Run("Missing name", func(t *testing.T) {
		h := newServer(t, &fakeMapService{maps: map[uuid.UUID]*dmn.Map{}})
		w := post(t, h, map[string]interface{}{"cells": corridor()}, "ok")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Malformed maze", func(t *testing.T) {
		h := newServer(t, &fakeMapService{maps: map[uuid.UUID]*dmn.Map{}})
		cells := [][]tilemap.MazeCell{{{X: 0, Y: 0}}, {{X: 1, Y: 1}}}
		w := post(t, h, tilemapapi.CreateMapRequest{Name: "gap", Cells: cells}, "ok")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "missing cell")
	})

	t.Run("Coordinate out of range", func(t *testing.T) {
		h := newServer(t, &fakeMapService{maps: map[uuid.UUID]*dmn.Map{}})
		cells := [][]tilemap.MazeCell{{{X: 0, Y: 0}}, {{X: 1 << 40, Y: 0}}}
		w := post(t, h, tilemapapi.CreateMapRequest{Name: "huge", Cells: cells}, "ok")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "out of range")
	})

	t.Run("Body too large", func(t *testing.T) {
		h := newServer(t, &fakeMapService{maps: map[uuid.UUID]*dmn.Map{}})
		body := `{"name":"` + strings.Repeat("a", 5<<20) + `","cells":[]}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/maps", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer ok")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})

	t.Run("Service failure", func(t *testing.T) {
		h := newServer(t, &fakeMapService{maps: map[uuid.UUID]*dmn.Map{}, createErr: errors.New("mongo down")})
		w := post(t, h, tilemapapi.CreateMapRequest{Name: "corridor", Cells: corridor()}, "ok")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "mongo")
	})
}

func TestGetMap(t *testing.T) {
	svc := &fakeMapService{maps: map[uuid.UUID]*dmn.Map{}}
	stored, err := svc.Create(context.Background(), "corridor", corridor())
	require.NoError(t, err)
	h := newServer(t, svc)

	t.Run("Map metadata", func(t *testing.T) {
		w := get(h, "/api/v1/maps/"+stored.ID.String())
		require.Equal(t, http.StatusOK, w.Code)

		var res tilemapapi.MapResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, stored.ID.String(), res.ID)
		assert.Equal(t, stored.Grid, res.Grid)
	})

	t.Run("Grid as array literal", func(t *testing.T) {
		w := get(h, "/api/v1/maps/"+stored.ID.String()+"/grid")
		require.Equal(t, http.StatusOK, w.Code)

		grid, err := tilemap.Parse(w.Body.Bytes())
		require.NoError(t, err)
		assert.Equal(t, stored.Grid, grid)
	})

	t.Run("Grid as JS module", func(t *testing.T) {
		w := get(h, "/api/v1/maps/"+stored.ID.String()+"/grid?format=js")
		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, strings.HasPrefix(w.Body.String(), "export default"))
	})

	t.Run("Invalid id", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, get(h, "/api/v1/maps/not-a-uuid").Code)
	})

	t.Run("Unknown map", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, get(h, "/api/v1/maps/"+uuid.New().String()).Code)
	})
}
