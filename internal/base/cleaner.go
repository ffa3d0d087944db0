package base

import (
	"context"
	"fmt"
	. "github.com/half-nothing/simple-launch/internal/interfaces/global"
	. "github.com/half-nothing/simple-launch/internal/interfaces/log"
	"github.com/half-nothing/simple-launch/internal/utils"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

const cleanerTimeout = 10 * time.Second

// Cleaner runs the registered shutdown callbacks in reverse registration order, the logger always goes last
type Cleaner struct {
	cleaners       []Callable
	mu             sync.Mutex
	cleaning       bool
	failed         bool
	done           chan struct{}
	loggerShutdown Callable
	logger         LoggerInterface
	exit           func(code int)
}

func NewCleaner(logger LoggerInterface) *Cleaner {
	return &Cleaner{
		cleaners:       make([]Callable, 0),
		done:           make(chan struct{}),
		loggerShutdown: logger.ShutdownCallback(),
		logger:         logger,
		exit:           syscall.Exit,
	}
}

func (c *Cleaner) Add(callable Callable) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cleaning {
		c.logger.Debug("Cleaner is already shutting down, ignoring new cleaner")
		return
	}
	c.cleaners = append(c.cleaners, callable)
	c.logger.DebugF("Adding cleaner #%d (%T)", len(c.cleaners), callable)
}

// MarkFailed makes the process exit with a non-zero code once cleanup finishes
func (c *Cleaner) MarkFailed() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failed = true
}

// Clean runs the callbacks and exits once, later calls block until that run has finished
func (c *Cleaner) Clean() {
	c.mu.Lock()
	if c.cleaning {
		c.mu.Unlock()
		<-c.done
		return
	}
	c.cleaning = true
	failed := c.failed
	cleanersCopy := make([]Callable, len(c.cleaners))
	copy(cleanersCopy, c.cleaners)
	c.mu.Unlock()

	c.logger.DebugF("Starting cleanup of %d registered functions", len(cleanersCopy))

	var errs []error
	utils.ReverseForEach(cleanersCopy, func(idx int, callback Callable) {
		c.logger.DebugF("Invoking cleaner #%d (%T)", idx+1, callback)
		timeoutCtx, cancelFunc := context.WithTimeout(context.Background(), cleanerTimeout)
		defer cancelFunc()
		if err := callback.Invoke(timeoutCtx); err != nil {
			c.logger.ErrorF("Cleaner #%d (%T) failed: %v", idx+1, callback, err)
			errs = append(errs, err)
		}
	})

	if len(errs) > 0 {
		c.logger.ErrorF("%d errors occurred during cleanup:", len(errs))
		for i, err := range errs {
			c.logger.ErrorF("Error %d: %v", i+1, err)
		}
	} else {
		c.logger.Debug("All cleaners executed successfully")
	}
	c.logger.Info("Cleanup finished, launch server offline")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := c.loggerShutdown.Invoke(shutdownCtx); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "LOGGER SHUTDOWN ERROR: %v\n", err)
	}
	defer close(c.done)
	if failed || len(errs) > 0 {
		c.exit(1)
		return
	}
	c.exit(0)
}

func (c *Cleaner) Init() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctx.Done()
		stop()
		c.logger.Info("Received interrupt signal, shutting down")

		c.Clean()
	}()
}
