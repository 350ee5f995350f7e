package services

// ServiceContainer holds all application services.
type ServiceContainer struct {
	IntakeService    IntakeService
	AssistantService AssistantService
}
