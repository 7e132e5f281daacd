// scripts/gcal-check/main.go
//
// Run this once to verify that the service-account credentials can create
// events on the target calendar before enabling deadline export.
//
// Usage:
//   go run scripts/gcal-check/main.go [credentials.json] [calendar-id]
//
// Remember to share the calendar with the service account's email address,
// otherwise event creation fails with a 404.

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"taskboard-aggregator/pkg/gcalendar"
)

func main() {
	credsPath := "google-credentials.json"
	if len(os.Args) > 1 {
		credsPath = os.Args[1]
	}
	calendarID := "primary"
	if len(os.Args) > 2 {
		calendarID = os.Args[2]
	}

	ctx := context.Background()

	client, err := gcalendar.NewClientFromCredentialsFile(ctx, credsPath)
	if err != nil {
		log.Fatalf("Failed to create calendar client from %q: %v", credsPath, err)
	}

	start := time.Now().Add(5 * time.Minute)
	event, err := client.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  calendarID,
		Summary:     "taskboard-aggregator connectivity check",
		Description: "Safe to delete. Created by scripts/gcal-check.",
		StartTime:   start,
		EndTime:     start.Add(15 * time.Minute),
		Timezone:    "UTC",
	})
	if err != nil {
		log.Fatalf("Failed to create test event on calendar %q: %v", calendarID, err)
	}

	fmt.Println("Calendar access OK.")
	fmt.Printf("Test event created: %s\n", event.HtmlLink)
	fmt.Println("Delete it from the calendar when done.")
}
