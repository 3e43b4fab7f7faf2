package main

import (
	"log"
	"os"
	"strconv"

	"stockhealth/cmd"
)

func main() {
	port := 3010
	if p, err := strconv.Atoi(os.Getenv("PORT")); err == nil {
		port = p
	}

	apiHandler, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	err = apiHandler.StartApi(port)
	if err != nil {
		log.Fatal(err)
	}
}
