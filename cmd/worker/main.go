package main // booking event consumer entry point

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/juanfer112/reservaPlaza-back-end/internal/queue"
)

// The worker tails the schedule.booked queue and appends each batch to
// logs/booking.log. It reconnects on broker failures and never exits on
// its own.
func main() {
	_ = godotenv.Load()

	log.Println("schedule consumer starting")
	if err := queue.StartScheduleConsumer(); err != nil {
		log.Fatalf("consumer stopped: %v", err)
	}
}
