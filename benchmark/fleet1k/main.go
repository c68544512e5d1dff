package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

var maxShipments int = 1000
var samplesPerShipment int = 10
var httpHostPort string = "127.0.0.1:1080"

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

func main() {
	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	var startTime time.Time
	var usedTime time.Duration

	shipmentIDs := make([]string, maxShipments)

	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := range maxShipments {
		wg.Add(1)
		go func() {
			shipmentIDs[i] = createShipment(i)
			fmt.Printf("\rcreated shipment %v", i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rcreated %v shipments: used time=%v seconds, throughput=%v action/second\n",
		maxShipments, usedTime.Seconds(), float64(maxShipments)/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := range maxShipments {
		wg.Add(1)
		go func() {
			driveShipment(shipmentIDs[i])
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	totalSamples := maxShipments * samplesPerShipment
	fmt.Printf(
		"\n\rposted %v samples: used time=%v seconds, throughput=%v action/second\n",
		totalSamples, usedTime.Seconds(), float64(totalSamples)/usedTime.Seconds(),
	)
}

func flipCoin() bool {
	return rnd.Int31n(100000)%2 == 0
}

func rndFloat64(min, max float64, decimal int) float64 {
	val := min + rnd.Float64()*(max-min)
	multiplier := float64(math.Pow10(decimal))
	return float64(math.Round(float64(val)*float64(multiplier))) / multiplier
}

// createShipment registers a shipment on a short straight route and returns
// its id.
func createShipment(index int) string {
	startLat := rndFloat64(30.0, 45.0, 4)
	startLng := rndFloat64(-120.0, -75.0, 4)
	payload := map[string]any{
		"owner_id": fmt.Sprintf("owner-%03d", index%50),
		"route": []map[string]float64{
			{"lat": startLat, "lng": startLng},
			{"lat": startLat + 0.5, "lng": startLng + 0.5},
			{"lat": startLat + 1.0, "lng": startLng + 1.0},
		},
	}

	jsonData, _ := json.Marshal(payload)
	resp, err := http.Post(fmt.Sprintf("http://%s/shipments", httpHostPort), "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		panic(fmt.Sprintf("unexpected status creating shipment: %v", resp.StatusCode))
	}

	var created struct {
		ID string `json:"id"`
	}
	body, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(body, &created); err != nil {
		panic(err)
	}
	return created.ID
}

// driveShipment activates the shipment, then walks it along its route posting
// telemetry with the occasional anomaly mixed in.
func driveShipment(shipmentID string) {
	postJSON(fmt.Sprintf("http://%s/shipments/%s/status", httpHostPort, shipmentID),
		map[string]any{"status": "active"})

	var shipment struct {
		Route []struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"route"`
	}
	resp, err := http.Get(fmt.Sprintf("http://%s/shipments/%s", httpHostPort, shipmentID))
	if err != nil {
		fmt.Printf("\nerror: %v\n", err)
		return
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err := json.Unmarshal(body, &shipment); err != nil || len(shipment.Route) < 2 {
		fmt.Printf("\nfailed to read route for %v\n", shipmentID)
		return
	}

	start := shipment.Route[0]
	end := shipment.Route[len(shipment.Route)-1]
	weight := rndFloat64(500.0, 2000.0, 1)

	for i := range samplesPerShipment {
		t := float64(i) / float64(samplesPerShipment-1)
		lat := start.Lat + (end.Lat-start.Lat)*t
		lng := start.Lng + (end.Lng-start.Lng)*t

		// roughly 1 in 10 samples wanders off route
		if rnd.Int31n(10) == 0 {
			lat += rndFloat64(0.01, 0.05, 4)
		}

		sample := map[string]any{
			"device_id":     "bench-device",
			"location":      map[string]float64{"lat": lat, "lng": lng},
			"weight":        weight + rndFloat64(-5.0, 5.0, 1),
			"battery_level": rndFloat64(10.0, 100.0, 0),
			"timestamp":     time.Now().Format(time.RFC3339),
		}
		if flipCoin() {
			sample["seal_status"] = "intact"
		}

		postJSON(fmt.Sprintf("http://%s/shipments/%s/telemetry", httpHostPort, shipmentID), sample)
		fmt.Printf("\rposted sample %v for shipment %v", i, shipmentID)
		time.Sleep(time.Duration(100+rnd.Int31n(1000)) * time.Millisecond)
	}
}

func postJSON(url string, payload map[string]any) {
	jsonData, _ := json.Marshal(payload)
	resp, err := http.Post(url, "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		fmt.Printf("\nerror: %v\n", err)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusTooManyRequests {
		fmt.Printf("\nresponse status code != 200: %v\n", resp.StatusCode)
	}
}
