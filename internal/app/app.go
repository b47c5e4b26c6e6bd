// Package app runs a set of dependencies as one process: started in order, stopped in reverse
// order on context cancellation, an OS signal or a startup failure.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
)

//go:generate mockgen -destination=./app_mock.go -package=app -source=app.go

// Dependency is the interface that wraps the basic methods of a dependency required for the application.
type Dependency interface {
	// Start is anything a dependency needs to do before it's ready to be used. It must not block.
	Start() error
	// Stop is anything a dependency needs to do before it's ready to be stopped
	Stop() error
	// Name is the name of the dependency. It is used for logging and identification purposes, only.
	Name() string
}

type App struct {
	serviceName string
	// Deps is the list of dependencies the application starts, in order.
	deps []Dependency
	// started holds the dependencies whose Start succeeded, in start order.
	started []Dependency
	mu      sync.Mutex
	// osSignalChan is a channel that will be used to signal when the OS has sent a signal to the application.
	osSignalChan chan os.Signal
	// stopCalled is an atomic bool. It allows stop to be called once
	stopCalled atomic.Bool
	// runCalled allows Run to be called once
	runCalled atomic.Bool
	// stopTimeout is the amount of time the application will wait for dependencies to stop before exiting.
	stopTimeout time.Duration
}

type Config struct {
	ServiceName string
	StopTimeout time.Duration
}

func (c *Config) validate() error {
	var errs []error
	if c.ServiceName == "" {
		errs = append(errs, errors.New("service name is required"))
	}
	if c.StopTimeout == 0 {
		errs = append(errs, errors.New("stop timeout is required"))
	}
	return errors.Join(errs...)
}

// CreateApp creates a new application with the provided dependencies.
func CreateApp(cfg *Config, deps ...Dependency) (*App, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &App{
		serviceName:  cfg.ServiceName,
		deps:         deps,
		stopTimeout:  cfg.StopTimeout,
		osSignalChan: make(chan os.Signal, 1), // first signal we get shuts down the app
	}, nil
}

// Run starts all dependencies and blocks until ctx is done or the OS asks the process to
// terminate. A dependency failing to start stops the ones already running and is returned.
func (a *App) Run(ctx context.Context) error {
	if !a.runCalled.CompareAndSwap(false, true) {
		return errors.New("run has already been called")
	}

	log.Info().Msg("Starting " + a.serviceName)
	if err := a.start(); err != nil {
		log.Error().Msg("Dependency failed to start: " + err.Error())
		return errors.Join(err, a.stop())
	}

	// here we are waiting for a signal from the OS or the ctx to just cancel
	signal.Notify(a.osSignalChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(a.osSignalChan)

	select {
	case <-ctx.Done():
		log.Info().Msg("App Context cancelled: shutting down")
	case sig := <-a.osSignalChan:
		log.Info().Msg("OS Signal received: " + sig.String() + " shutdown beginning...")
	}

	if err := a.stop(); err != nil {
		log.Error().Msg("Error stopping application: " + err.Error())
		return err
	}
	return nil
}

// RunTask starts all dependencies, runs task and stops the dependencies once it returns. An
// OS signal cancels the context given to task.
func (a *App) RunTask(ctx context.Context, task func(ctx context.Context) error) error {
	if !a.runCalled.CompareAndSwap(false, true) {
		return errors.New("run has already been called")
	}

	log.Info().Msg("Starting " + a.serviceName)
	if err := a.start(); err != nil {
		log.Error().Msg("Dependency failed to start: " + err.Error())
		return errors.Join(err, a.stop())
	}

	taskCtx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	taskErr := task(taskCtx)
	if taskErr != nil {
		log.Error().Err(taskErr).Msg(a.serviceName + " task failed")
	}
	return errors.Join(taskErr, a.stop())
}

// start runs each dependency's Start in order. Later dependencies may rely on earlier ones
// being ready.
func (a *App) start() error {
	for _, dep := range a.deps {
		log.Info().Msg("Starting dependency: " + dep.Name())
		if err := startDependency(dep); err != nil {
			return err
		}
		a.mu.Lock()
		a.started = append(a.started, dep)
		a.mu.Unlock()
	}
	return nil
}

func startDependency(dep Dependency) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in Start() for dependency %s: %v", dep.Name(), r)
		}
	}()

	if err := dep.Start(); err != nil {
		return fmt.Errorf("failure in Start() for dependency %s: %w", dep.Name(), err)
	}
	return nil
}

// stop attempts a graceful shutdown of each started dependency, in reverse start order.
func (a *App) stop() error {
	if !a.stopCalled.CompareAndSwap(false, true) {
		return errors.New("stop has already been called")
	}

	a.mu.Lock()
	started := a.started
	a.mu.Unlock()

	var errs []error
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := len(started) - 1; i >= 0; i-- {
			dep := started[i]
			log.Info().Msg("Stopping dependency: " + dep.Name())
			if err := dep.Stop(); err != nil {
				errs = append(errs, fmt.Errorf("failure in Stop() for dependency %s: %w", dep.Name(), err))
			}
		}
	}()

	// we need all dependencies to stop before we can return
	select {
	case <-done:
		return errors.Join(errs...)
	case <-time.After(a.stopTimeout):
		return fmt.Errorf("stopping %s: %w", a.serviceName, context.DeadlineExceeded)
	}
}
