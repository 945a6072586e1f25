package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/beka-birhanu/vinom-tilemap/api"
	api_i "github.com/beka-birhanu/vinom-tilemap/api/i"
	"github.com/beka-birhanu/vinom-tilemap/api/identity"
	tilemapapi "github.com/beka-birhanu/vinom-tilemap/api/tilemap"
	"github.com/beka-birhanu/vinom-tilemap/config"
	"github.com/beka-birhanu/vinom-tilemap/infrastruture/cache"
	logger "github.com/beka-birhanu/vinom-tilemap/infrastruture/log"
	"github.com/beka-birhanu/vinom-tilemap/infrastruture/repo"
	"github.com/beka-birhanu/vinom-tilemap/infrastruture/token"
	"github.com/beka-birhanu/vinom-tilemap/maze"
	"github.com/beka-birhanu/vinom-tilemap/service"
	"github.com/beka-birhanu/vinom-tilemap/service/i"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	appLogger     *logger.Logger
	mongoClient   *mongo.Client
	redisClient   *redis.Client
	mapRepo       *repo.MapRepo
	mapCache      i.MapCache
	mapService    i.MapService
	jwtTokenizer  i.Tokenizer
	mapController api_i.Controller
	router        *api.Router
)

const usage = `Usage: vinom-tilemap <command> [options]

Commands:
  convert   [-strict] <maze.json> <map.json|map.js>   convert generator output into a tile map
  generate  [-w N] [-h N] [-seed N] [-print] <maze.json>  generate a maze in generator format
  fixtures  [-dir DIR] [-seed N]                     regenerate the 3x3, 11x11 and 100x100 maps
  serve                                              run the map HTTP API
`

func main() {
	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stdout)

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "convert":
		err = runConvert(os.Args[2:])
	case "generate":
		err = runGenerate(os.Args[2:])
	case "fixtures":
		err = runFixtures(os.Args[2:])
	case "serve":
		err = runServe()
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	if err != nil {
		appLogger.Error(err.Error())
		os.Exit(1)
	}
}

func newConverter(strict bool) (*service.Converter, error) {
	convLogger, err := logger.New("CONVERTER", config.ColorCyan, os.Stdout)
	if err != nil {
		return nil, fmt.Errorf("creating converter logger: %w", err)
	}
	var opts []service.ConverterOption
	if strict {
		opts = append(opts, service.ConverterWithStrictWalls())
	}
	return service.NewConverter(convLogger, opts...), nil
}

func runConvert(args []string) error {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	strict := fs.Bool("strict", false, "Reject mazes whose neighbouring cells disagree about a shared wall")
	_ = fs.Parse(args)

	if fs.NArg() != 2 {
		return fmt.Errorf("convert expects <maze.json> <map.json>, got %d arguments", fs.NArg())
	}

	converter, err := newConverter(*strict)
	if err != nil {
		return err
	}
	return converter.ConvertFile(fs.Arg(0), fs.Arg(1))
}

func runGenerate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	width := fs.Int("w", 11, "Maze width in cells")
	height := fs.Int("h", 11, "Maze height in cells")
	seed := fs.Int64("seed", 0, "Random seed (0 = time based)")
	printMaze := fs.Bool("print", false, "Print the maze as ASCII art")
	_ = fs.Parse(args)

	if fs.NArg() != 1 {
		return fmt.Errorf("generate expects <maze.json>, got %d arguments", fs.NArg())
	}

	m, err := maze.New(*width, *height, *seed)
	if err != nil {
		return err
	}
	if *printMaze {
		fmt.Print(m.String())
	}

	if err := service.WriteCells(fs.Arg(0), m.Cells()); err != nil {
		return err
	}
	appLogger.Info(fmt.Sprintf("generated %dx%d maze -> %s", *width, *height, fs.Arg(0)))
	return nil
}

func runFixtures(args []string) error {
	fs := flag.NewFlagSet("fixtures", flag.ExitOnError)
	dir := fs.String("dir", config.Envs.MapDir, "Output directory")
	seed := fs.Int64("seed", 1, "Random seed of the first maze (0 = time based)")
	_ = fs.Parse(args)

	converter, err := newConverter(true)
	if err != nil {
		return err
	}
	if err := converter.GenerateFixtures(filepath.Clean(*dir), service.FixtureSizes, *seed); err != nil {
		return err
	}
	appLogger.Info(fmt.Sprintf("fixtures written to %s", *dir))
	return nil
}

func initMongo(ctx context.Context) error {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	var err error
	mongoClient, err = mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return fmt.Errorf("connecting to MongoDB: %w", err)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		return fmt.Errorf("MongoDB ping failed: %w", err)
	}
	appLogger.Info("Connected to MongoDB")
	return nil
}

func initMapRepo(ctx context.Context) error {
	mapRepo = repo.NewMapRepo(mongoClient, config.Envs.DBName, "maps")
	if err := mapRepo.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("creating map indexes: %w", err)
	}
	appLogger.Info("Map repository initialized")
	return nil
}

func initRedis(ctx context.Context) error {
	redisClient = redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%d", config.Envs.RedisHost, config.Envs.RedisPort),
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}

	var err error
	mapCache, err = cache.NewRedisMapCache(redisClient, config.Envs.CacheTTLSeconds)
	if err != nil {
		return fmt.Errorf("creating map cache: %w", err)
	}
	appLogger.Info("Connected to Redis")
	return nil
}

func initMapService() error {
	serviceLogger, err := logger.New("MAP-SERVICE", config.ColorPurple, os.Stdout)
	if err != nil {
		return fmt.Errorf("creating map service logger: %w", err)
	}
	mapService, err = service.NewMapService(mapRepo, mapCache, serviceLogger)
	if err != nil {
		return fmt.Errorf("creating map service: %w", err)
	}
	appLogger.Info("Map service initialized")
	return nil
}

func initJWTTokenizer() error {
	var err error
	jwtTokenizer, err = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	if err != nil {
		return fmt.Errorf("creating JWT tokenizer: %w", err)
	}
	appLogger.Info("JWT Tokenizer initialized")
	return nil
}

func initMapController() error {
	var err error
	mapController, err = tilemapapi.NewMapController(mapService)
	if err != nil {
		return fmt.Errorf("creating map controller: %w", err)
	}
	appLogger.Info("Map controller initialized")
	return nil
}

func initRouter() {
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Mode:                    config.Envs.GinMode,
		Controllers:             []api_i.Controller{mapController},
		AuthorizationMiddleware: identity.Authorize(jwtTokenizer),
	})
	appLogger.Info("Router initialized")
}

func runServe() error {
	if err := config.Envs.ValidateServer(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := initMongo(ctx); err != nil {
		return err
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	if err := initMapRepo(ctx); err != nil {
		return err
	}
	if err := initRedis(ctx); err != nil {
		return err
	}
	defer redisClient.Close()

	for _, initFn := range []func() error{initMapService, initJWTTokenizer, initMapController} {
		if err := initFn(); err != nil {
			return err
		}
	}
	initRouter()

	return router.Run()
}
