// @title           SevakAI API
// @version         1.0
// @description     Intake and assistant API for the SevakAI domestic helper platform (Swagger documentation).
// @contact.name    SevakAI
// @contact.email   hello@sevakai.com
// @host            localhost:8080
// @BasePath        /api/v1

package main

import "github.com/tejaIG/sevak-ai-poc/internal/app"

func main() {
	app.Run()
}
