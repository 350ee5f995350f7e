package handlers

// AppHandlers holds all application handlers.
type AppHandlers struct {
	UserHandler         *UserHandler
	RequirementsHandler *RequirementsHandler
	AssistantHandler    *AssistantHandler
	HealthHandler       *HealthHandler
}
