package tilemapapi

import (
	"errors"
	"net/http"

	dmn "github.com/beka-birhanu/vinom-tilemap/domain"
	"github.com/beka-birhanu/vinom-tilemap/service/i"
	"github.com/beka-birhanu/vinom-tilemap/tilemap"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// maxCreateBodyBytes bounds an upload. A 100x100 maze is a few hundred KB.
const maxCreateBodyBytes = 4 << 20

// MapController serves converted maps and accepts new mazes.
type MapController struct {
	mapService i.MapService
}

// NewMapController initializes a MapController.
func NewMapController(ms i.MapService) (*MapController, error) {
	if ms == nil {
		return nil, errors.New("nil map service")
	}
	return &MapController{mapService: ms}, nil
}

// RegisterPublic registers public routes.
func (mc *MapController) RegisterPublic(route *gin.RouterGroup) {
	maps := route.Group("/maps")
	{
		maps.GET("/:ID", mc.mapByID)
		maps.GET("/:ID/grid", mc.gridByID)
	}
}

// RegisterProtected registers protected routes.
func (mc *MapController) RegisterProtected(route *gin.RouterGroup) {
	maps := route.Group("/maps")
	{
		maps.POST("", mc.create)
	}
}

// create converts the uploaded maze and stores the map.
func (mc *MapController) create(ctx *gin.Context) {
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxCreateBodyBytes)

	var request CreateMapRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			ctx.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "maze too large"})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, err := mc.mapService.Create(ctx.Request.Context(), request.Name, request.Cells)
	if err != nil {
		if errors.Is(err, tilemap.ErrMalformedInput) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while converting maze"})
		return
	}

	ctx.JSON(http.StatusCreated, newMapResponse(m))
}

// mapByID returns a stored map with its metadata.
func (mc *MapController) mapByID(ctx *gin.Context) {
	m, ok := mc.lookup(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, newMapResponse(m))
}

// gridByID returns only the encoded grid, as the game's map files hold it.
// "?format=js" selects the JS module form.
func (mc *MapController) gridByID(ctx *gin.Context) {
	m, ok := mc.lookup(ctx)
	if !ok {
		return
	}

	if ctx.Query("format") == "js" {
		ctx.Data(http.StatusOK, "text/javascript; charset=utf-8", tilemap.EncodeModule(m.Grid))
		return
	}
	ctx.Data(http.StatusOK, "application/json; charset=utf-8", tilemap.Encode(m.Grid))
}

func (mc *MapController) lookup(ctx *gin.Context) (*dmn.Map, bool) {
	ID, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid map id"})
		return nil, false
	}

	m, err := mc.mapService.ByID(ctx.Request.Context(), ID)
	if err != nil {
		if errors.Is(err, dmn.ErrMapNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "map not found"})
			return nil, false
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while loading map"})
		return nil, false
	}
	return m, true
}
