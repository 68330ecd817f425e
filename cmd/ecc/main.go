package main

import (
	log "github.com/sirupsen/logrus"
)

func main() {
	err := GetRootCmd().Execute()
	if err != nil {
		log.Fatalf("ecc: %s", err.Error())
	}
}
