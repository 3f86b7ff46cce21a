package main

import (
	"context"
	"log"

	"aiconsult/internal/database"
	"aiconsult/internal/domain"
	"aiconsult/internal/repository"
)

func main() {
	db, err := database.Connect("aiconsult.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old content...")
	db.Exec("DELETE FROM prompts")
	db.Exec("DELETE FROM tools")
	db.Exec("DELETE FROM blueprints")

	ctx := context.Background()

	// ================== PROMPTS ==================
	log.Println("Creating prompts...")
	promptRepo := repository.NewPromptRepository(db)
	prompts := []domain.Prompt{
		{
			Title:       "Meeting Notes to Action Items",
			Description: "Turn raw meeting transcripts into a prioritized action list.",
			Content:     "You are an executive assistant. Read the transcript below and extract every commitment as an action item with an owner and a due date.\n\nTranscript:\n{{transcript}}",
			Category:    "productivity",
			Author:      "AI Consult",
			Tags:        domain.StringList{"meetings", "summarization"},
			IsPublic:    true,
		},
		{
			Title:       "Cold Outreach Personalizer",
			Description: "Draft a personalized first-touch email from a prospect profile.",
			Content:     "Write a three-sentence outreach email to {{name}} at {{company}}. Reference their role ({{role}}) and one relevant pain point. No buzzwords.",
			Category:    "sales",
			Author:      "AI Consult",
			Tags:        domain.StringList{"email", "sales"},
			IsPublic:    true,
		},
		{
			Title:       "Support Ticket Triage",
			Description: "Classify and route incoming support tickets.",
			Content:     "Classify the ticket below as billing, technical, or account. Return JSON: {\"category\": ..., \"urgency\": 1-5, \"summary\": ...}.\n\nTicket:\n{{ticket}}",
			Category:    "support",
			Author:      "AI Consult",
			Tags:        domain.StringList{"support", "classification"},
			IsPublic:    true,
		},
	}
	for i := range prompts {
		if err := promptRepo.Create(ctx, &prompts[i]); err != nil {
			log.Fatal("seed prompt failed:", err)
		}
	}

	// ================== TOOLS ==================
	log.Println("Creating tools...")
	toolRepo := repository.NewToolRepository(db)
	tools := []domain.Tool{
		{
			Name:        "Zapier",
			Description: "Connect apps and automate workflows without code.",
			Category:    "automation",
			WebsiteURL:  "https://zapier.com",
			Tags:        domain.StringList{"no-code", "integrations"},
			IsFeatured:  true,
		},
		{
			Name:        "Make",
			Description: "Visual automation platform for complex multi-step scenarios.",
			Category:    "automation",
			WebsiteURL:  "https://www.make.com",
			Tags:        domain.StringList{"no-code", "workflows"},
		},
		{
			Name:        "n8n",
			Description: "Source-available workflow automation you can self-host.",
			Category:    "automation",
			WebsiteURL:  "https://n8n.io",
			Tags:        domain.StringList{"self-hosted", "workflows"},
			IsFeatured:  true,
		},
	}
	for i := range tools {
		if err := toolRepo.Create(ctx, &tools[i]); err != nil {
			log.Fatal("seed tool failed:", err)
		}
	}

	// ================== BLUEPRINTS ==================
	log.Println("Creating blueprints...")
	blueprintRepo := repository.NewBlueprintRepository(db)
	size := func(kb int) *int { return &kb }
	blueprints := []domain.Blueprint{
		{
			Title:        "Automatic Email from Transcript",
			Description:  "Workflow that drafts a follow-up email from any meeting transcript.",
			JSONFilePath: "automatic-email-from-transcript.json",
			FileSizeKB:   size(18),
			Category:     "email",
			IsFeatured:   true,
		},
		{
			Title:        "Lead Enrichment Pipeline",
			Description:  "Enrich inbound leads with firmographic data before they hit the CRM.",
			JSONFilePath: "lead-enrichment-pipeline.json",
			FileSizeKB:   size(24),
			Category:     "sales",
		},
		{
			Title:        "Invoice Intake OCR",
			Description:  "Parse emailed invoices into accounting rows automatically.",
			JSONFilePath: "invoice-intake-ocr.json",
			FileSizeKB:   size(31),
			Category:     "finance",
		},
	}
	for i := range blueprints {
		if err := blueprintRepo.Create(ctx, &blueprints[i]); err != nil {
			log.Fatal("seed blueprint failed:", err)
		}
	}

	log.Println("Seed complete.")
}
