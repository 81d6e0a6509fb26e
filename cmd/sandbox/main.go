// cmd/sandbox/main.go
package main

import (
	"context"
	"flag"
	"math"
	"os"

	"github.com/EngoEngine/ecs"

	"github.com/opd-ai/go-contact/pkg/collision"
	"github.com/opd-ai/go-contact/pkg/config"
	"github.com/opd-ai/go-contact/pkg/contact"
	"github.com/opd-ai/go-contact/pkg/event"
	"github.com/opd-ai/go-contact/pkg/logging"
	"github.com/opd-ai/go-contact/pkg/physics"
	"github.com/opd-ai/go-contact/pkg/shape"
)

func main() {
	logger := logging.NewLogger()
	ctx := context.Background()

	configPath := flag.String("config", "contact.json", "Path to configuration file")
	createDefault := flag.Bool("default", false, "Create default configuration file")
	steps := flag.Int("steps", 120, "Number of simulation steps")
	dt := flag.Float64("dt", 1.0/60.0, "Seconds per step")
	balls := flag.Int("balls", 6, "Number of falling balls")
	flag.Parse()

	if *createDefault {
		if err := config.SaveConfig(config.DefaultConfig(), *configPath); err != nil {
			logger.Error(ctx, "Failed to create default configuration", err,
				"config_path", *configPath,
			)
			os.Exit(1)
		}
		logger.Info(ctx, "Created default configuration file",
			"config_path", *configPath,
		)
		return
	}

	cfg, err := loadConfig(ctx, logger, *configPath)
	if err != nil {
		logger.Error(ctx, "Failed to load configuration", err,
			"config_path", *configPath,
		)
		os.Exit(1)
	}

	level, _ := logging.ParseLevel(cfg.LogLevel)
	logger = logging.NewLoggerWithWriter(os.Stdout, level)

	handler := collision.NewHandler(cfg, logger)
	world := &ecs.World{}
	world.AddSystem(handler)

	subscribeContactLogging(ctx, logger, handler.Bus())
	buildScene(ctx, logger, handler, *balls)

	logger.Info(ctx, "Running sandbox",
		"steps", *steps,
		"dt", *dt,
		"objects", len(handler.Objects()),
	)
	for i := 0; i < *steps; i++ {
		world.Update(float32(*dt))
	}
	logger.Info(ctx, "Sandbox finished", "steps", handler.Steps())
}

func loadConfig(ctx context.Context, logger *logging.Logger, path string) (*config.Config, error) {
	var cfg *config.Config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Info(ctx, "Configuration file not found, using default configuration",
			"config_path", path,
		)
		cfg = config.DefaultConfig()
	} else {
		cfg, err = config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
	}

	if err := config.ApplyEnvironmentOverrides(cfg); err != nil {
		return nil, logging.WrapError(err, "apply environment overrides")
	}
	return cfg, nil
}

func subscribeContactLogging(ctx context.Context, logger *logging.Logger, bus *event.Bus) {
	bus.Subscribe(event.ContactStarted, func(e event.Event) {
		ce := e.(*event.ContactEvent)
		logger.Info(ctx, "Contact started", "self_id", ce.SelfID, "other_id", ce.OtherID)
	})
	bus.Subscribe(event.ContactEnded, func(e event.Event) {
		ce := e.(*event.ContactEvent)
		logger.Info(ctx, "Contact ended", "self_id", ce.SelfID, "other_id", ce.OtherID)
	})
}

// buildScene drops balls onto a passive floor between two walls
func buildScene(ctx context.Context, logger *logging.Logger, handler *collision.Handler, balls int) {
	floor := collision.NewObject(physics.Transform2D{},
		collision.NewCollider(shape.NewSegment(
			physics.Vector2D{X: -20, Y: 0},
			physics.Vector2D{X: 20, Y: 0},
		)),
	)
	floor.Passive = true
	handler.AddObject(floor)

	for _, x := range []float64{-21, 21} {
		wall := collision.NewObject(
			physics.NewTransform2D(physics.Vector2D{X: x, Y: 10}, 0),
			collision.NewCollider(shape.NewRect(physics.Vector2D{}, 2, 20)),
		)
		handler.AddObject(wall)
	}

	for i := 0; i < balls; i++ {
		angle := float64(i) / float64(balls) * 2 * math.Pi
		ball := collision.NewObject(
			physics.NewTransform2D(physics.Vector2D{X: float64(i*4 - balls*2), Y: 5 + float64(i)}, 0),
			collision.NewCollider(shape.NewCircle(physics.Vector2D{}, 1)),
		)
		ball.Velocity = physics.FromAngle(angle, 3).Add(physics.Vector2D{Y: -6})
		ball.FilterCollisionPoints = true
		ball.FilterType = contact.Closest
		ball.OnCollision.Subscribe(bounce(ctx, logger, ball))
		handler.AddObject(ball)
	}
}

// bounce reflects the ball velocity off the closest contact on first touch
func bounce(ctx context.Context, logger *logging.Logger, ball *collision.Object) func(*collision.Information) {
	return func(info *collision.Information) {
		if !info.FirstContact {
			return
		}
		result, ok := info.ValidatePoint(ball.Transform.Position)
		if !ok {
			return
		}
		n := result.Closest.Normal
		if ball.Velocity.Dot(n) < 0 {
			ball.Velocity = ball.Velocity.Sub(n.Scale(2 * ball.Velocity.Dot(n)))
		}
		logger.Debug(ctx, "Ball bounced", "object_id", ball.ID(), "normal", n.String())
	}
}
