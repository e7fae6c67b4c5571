// feedgen publishes synthetic delivery-app notifications to the feed
// topic for load and integration testing. Most events are well-formed
// order offers; a slice of promo chatter is mixed in so the parser's
// skip path gets exercised too.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/segmentio/kafka-go"
)

type FeedGen struct {
	writer    *kafka.Writer
	isRunning atomic.Bool
	wg        sync.WaitGroup
	ctx       context.Context
	cancel    context.CancelFunc
	topic     string
	brokers   []string
	totalSent atomic.Int64
	startedAt time.Time
}

type GenRequest struct {
	Rate     int    `json:"rate"`
	Duration string `json:"duration"`
}

func NewFeedGen(brokers []string, topic string) *FeedGen {
	ctx, cancel := context.WithCancel(context.Background())

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		BatchSize:    100,
	}

	return &FeedGen{
		writer:    writer,
		ctx:       ctx,
		cancel:    cancel,
		topic:     topic,
		brokers:   brokers,
		startedAt: time.Now(),
	}
}

func (g *FeedGen) Start(rate int, duration time.Duration) {
	if g.isRunning.Load() {
		return
	}
	g.isRunning.Store(true)
	g.totalSent.Store(0)

	log.Printf("Starting feed: rate=%d msg/s, duration=%v", rate, duration)

	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		defer g.isRunning.Store(false)

		ticker := time.NewTicker(time.Second / time.Duration(rate))
		defer ticker.Stop()

		timer := time.NewTimer(duration)
		defer timer.Stop()

		for {
			select {
			case <-ticker.C:
				message := generateNotification()
				jsonData, err := json.Marshal(message)
				if err != nil {
					log.Printf("Error marshaling message: %v", err)
					continue
				}

				err = g.writer.WriteMessages(g.ctx, kafka.Message{
					Value: jsonData,
					Time:  time.Now(),
				})
				if err != nil {
					log.Printf("Error sending message to Kafka: %v", err)
				} else {
					g.totalSent.Add(1)
				}

			case <-timer.C:
				log.Printf("Feed completed. Total sent: %d", g.totalSent.Load())
				return

			case <-g.ctx.Done():
				log.Printf("Feed stopped. Total sent: %d", g.totalSent.Load())
				return
			}
		}
	}()
}

func (g *FeedGen) Stop() {
	if g.isRunning.Load() {
		g.cancel()
		g.wg.Wait()

		// Recreate context for next run
		g.ctx, g.cancel = context.WithCancel(context.Background())
	}
}

func (g *FeedGen) Close() {
	g.Stop()
	g.writer.Close()
}

var packages = []string{
	"in.swiggy.deliveryapp",
	"com.zomato.delivery",
	"com.ubercab.driver",
	"com.bigbasket.delivery",
	"app.blinkit.partner",
	"com.zepto.rider",
	"com.grofers.delivery", // retired id, exercises the remap path
}

var orderTemplates = []string{
	"New order! Earn ₹%d • %d.%d km • %d mins",
	"Order ready for pickup. Payout Rs. %d, distance %d.%d km, ETA %d min",
	"You have a new delivery worth INR %d (%d.%d km away, ~%d mins)",
}

var chatterTemplates = []string{
	"Rate your last delivery and help us improve!",
	"Weekend bonus challenge is live. Check the app for details.",
	"App update available. Install now for the latest features.",
}

func generateNotification() map[string]interface{} {
	pkg := packages[rand.Intn(len(packages))]

	var title, text string
	if rand.Intn(10) < 8 {
		title = "New order nearby"
		text = fmt.Sprintf(orderTemplates[rand.Intn(len(orderTemplates))],
			40+rand.Intn(400), 1+rand.Intn(9), rand.Intn(10), 10+rand.Intn(40))
	} else {
		title = "Update"
		text = chatterTemplates[rand.Intn(len(chatterTemplates))]
	}

	return map[string]interface{}{
		"package":         pkg,
		"notification_id": rand.Intn(100000),
		"posted_at":       time.Now().Format(time.RFC3339Nano),
		"title":           title,
		"text":            text,
	}
}

func main() {
	brokers := []string{"kafka:9092"}
	if envBrokers := os.Getenv("KAFKA_BROKERS"); envBrokers != "" {
		brokers = []string{envBrokers}
	}

	topic := "notifications"
	if envTopic := os.Getenv("KAFKA_TOPIC"); envTopic != "" {
		topic = envTopic
	}

	gen := NewFeedGen(brokers, topic)
	defer gen.Close()

	http.HandleFunc("/start", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var req GenRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		if req.Rate <= 0 {
			req.Rate = 10
		}

		duration, err := time.ParseDuration(req.Duration)
		if err != nil {
			http.Error(w, "Invalid duration format: "+err.Error(), http.StatusBadRequest)
			return
		}

		gen.Start(req.Rate, duration)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":   "started",
			"rate":     req.Rate,
			"duration": duration.String(),
		})
	})

	http.HandleFunc("/stop", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		gen.Stop()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":     "stopped",
			"total_sent": gen.totalSent.Load(),
		})
	})

	http.HandleFunc("/stats", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"is_running": gen.isRunning.Load(),
			"total_sent": gen.totalSent.Load(),
		})
	})

	port := ":8082"
	if envPort := os.Getenv("FEEDGEN_PORT"); envPort != "" {
		port = ":" + envPort
	}

	log.Printf("Feedgen server started on %s", port)
	log.Printf("Endpoints: POST /start, POST /stop, GET /stats")
	log.Fatal(http.ListenAndServe(port, nil))
}
