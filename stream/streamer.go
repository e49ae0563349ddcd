package stream

import (
	"log"
	"sync"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/seblit/tintlayout/tint"
)

// Status is a snapshot of the streamed animation, safe to read from other
// goroutines through Streamer.Status.
type Status struct {
	Animated      bool  `json:"animated"`
	Running       bool  `json:"running"`
	Paused        bool  `json:"paused"`
	ElapsedMs     int64 `json:"elapsedMs"`
	CompletedLaps int   `json:"completedLaps"`
}

// Streamer drives the draw loop for a remote render target: once per tick
// it asks its tint factory for a Paint, rasterizes it and publishes the
// frame as binary over MQTT. It registers itself for redraw requests so
// frames are only sent while something changed.
type Streamer struct {
	config   Config
	client   mqtt.Client
	factory  tint.Factory
	raster   *Rasterizer
	animated *tint.Animated
	dirty    bool
	commands chan string

	mu     sync.Mutex
	status Status
}

// NewStreamer creates an instance of a Streamer.
func NewStreamer(config Config, client mqtt.Client, factory tint.Factory) (*Streamer, error) {
	background, err := config.BackgroundColor()
	if err != nil {
		return nil, err
	}
	s := new(Streamer)
	s.config = config
	s.client = client
	s.factory = factory
	s.raster = NewRasterizer(background)
	s.dirty = true
	s.commands = make(chan string, 8)
	if animator, ok := factory.(tint.Animator); ok {
		s.animated = animator.Timeline()
		tint.RegisterRedrawTarget(s.animated, s)
	}
	return s, nil
}

// Invalidate marks the current frame stale so the next tick publishes a new
// one. Called by the timeline while the animation is running.
func (s *Streamer) Invalidate() {
	s.dirty = true
}

// Subscribe listens for animation commands on the control topic. Commands
// are forwarded to the run loop so all timeline mutation stays on the one
// goroutine that owns it.
func (s *Streamer) Subscribe() {
	if s.config.Mqtt.Topics.Control == "" {
		return
	}
	s.client.Subscribe(s.config.Mqtt.Topics.Control, 1, func(client mqtt.Client, msg mqtt.Message) {
		s.commands <- string(msg.Payload())
	})
}

// Run causes the Streamer to send Frames continuously. It blocks; all
// timeline access happens on this goroutine.
func (s *Streamer) Run() {
	if s.animated != nil {
		s.animated.Start()
	}
	frameRate := s.config.Render.FrameRate
	if frameRate <= 0 {
		frameRate = 30
	}
	publishTimer := time.NewTicker(time.Duration(float64(time.Second) / frameRate))
	for {
		select {
		case cmd := <-s.commands:
			s.handleCommand(cmd)
		case <-publishTimer.C:
			if s.dirty {
				s.dirty = false
				s.SendFrame()
			}
			s.updateStatus()
		}
	}
}

func (s *Streamer) handleCommand(cmd string) {
	if s.animated == nil {
		log.Printf("Ignoring %q, tint is not animated", cmd)
		return
	}
	switch cmd {
	case "start":
		s.animated.Start()
	case "pause":
		s.animated.Pause()
	case "reset":
		s.animated.Reset()
	default:
		log.Printf("Unknown command %q", cmd)
	}
}

// SendFrame rasterizes the current tint and publishes it as binary over
// MQTT.
func (s *Streamer) SendFrame() {
	paint := s.factory.CreateTint(s.config.Render.Width, s.config.Render.Height)
	f := s.raster.Rasterize(paint, s.config.Render.Width, s.config.Render.Height)
	b, _ := f.MarshalBinary()
	token := s.client.Publish(s.config.Mqtt.Topics.Stream, 2, false, b)
	token.Wait()
}

// Status returns the latest animation snapshot.
func (s *Streamer) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *Streamer) updateStatus() {
	status := Status{}
	if s.animated != nil {
		status = Status{
			Animated:      true,
			Running:       s.animated.IsRunning(),
			Paused:        s.animated.IsPaused(),
			ElapsedMs:     s.animated.ElapsedTime(),
			CompletedLaps: s.animated.CompletedLaps(),
		}
	}
	s.mu.Lock()
	s.status = status
	s.mu.Unlock()
}
