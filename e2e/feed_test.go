//go:build e2e

package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	mqtt "github.com/eclipse/paho.mqtt.golang"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const mosquittoPort = nat.Port("1883/tcp")

func TestFeed_PublishesStoredObservation(t *testing.T) {
	host, port := startMosquitto(t)

	received := make(chan mqtt.Message, 1)
	sub := mqtt.NewClient(mqtt.NewClientOptions().
		AddBroker(fmt.Sprintf("tcp://%s:%d", host, port)).
		SetClientID("randomweather-e2e"))
	if tok := sub.Connect(); !tok.WaitTimeout(5*time.Second) || tok.Error() != nil {
		t.Fatalf("subscriber connect: %v", tok.Error())
	}
	t.Cleanup(func() { sub.Disconnect(250) })

	tok := sub.Subscribe("weather/observations/#", 1, func(_ mqtt.Client, m mqtt.Message) {
		select {
		case received <- m:
		default:
		}
	})
	if !tok.WaitTimeout(5*time.Second) || tok.Error() != nil {
		t.Fatalf("subscribe: %v", tok.Error())
	}

	repoRoot := repoRootPath(t)
	bin := buildBinary(t, repoRoot)
	addr := pickFreeAddr(t)
	client := &http.Client{Timeout: 2 * time.Second}
	base := "http://" + addr

	cmd := startServer(t, bin, []string{
		"APP_ENV=dev",
		"HTTP_ADDR=" + addr,
		"SQLITE_PATH=" + filepath.Join(t.TempDir(), "weather.db"),
		"MQTT_BROKER=" + host,
		fmt.Sprintf("MQTT_PORT=%d", port),
		"MQTT_TOPIC=weather/observations",
	})
	waitForOK(t, client, base+"/healthz", 10*time.Second)

	id := postObservation(t, client, base+"/api/weather/temp")

	select {
	case m := <-received:
		if m.Topic() != "weather/observations/temperature" {
			t.Errorf("topic=%q want=weather/observations/temperature", m.Topic())
		}
		var obs struct {
			ID        int    `json:"id"`
			Variant   string `json:"variant"`
			WindSpeed *int   `json:"windSpeed"`
		}
		if err := json.Unmarshal(m.Payload(), &obs); err != nil {
			t.Fatalf("payload is not JSON: %v", err)
		}
		if obs.ID != id || obs.Variant != "temperature" {
			t.Errorf("payload=%s; want id=%d variant=temperature", m.Payload(), id)
		}
		if obs.WindSpeed == nil || *obs.WindSpeed != 0 {
			t.Errorf("windSpeed=%v want 0 placeholder", obs.WindSpeed)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("no observation published")
	}

	stopServer(t, cmd)
}

func startMosquitto(t *testing.T) (string, int) {
	t.Helper()

	ctx := context.Background()
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "eclipse-mosquitto:1.6",
			ExposedPorts: []string{string(mosquittoPort)},
			WaitingFor:   wait.ForListeningPort(mosquittoPort).WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("start mosquitto container: %v", err)
	}
	t.Cleanup(func() {
		_ = c.Terminate(ctx)
	})

	host, err := c.Host(ctx)
	if err != nil {
		t.Fatalf("mosquitto host: %v", err)
	}
	mapped, err := c.MappedPort(ctx, mosquittoPort)
	if err != nil {
		t.Fatalf("mosquitto port: %v", err)
	}
	return host, mapped.Int()
}
