package main

import (
	"os"
	"testing"

	"weather-hunt/pkg/msg"
)

func TestMain(m *testing.M) {
	if err := msg.Init("../../configs/messages.yml"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}
