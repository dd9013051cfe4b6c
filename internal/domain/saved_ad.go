package domain

import "time"

// SavedAd é um snapshot persistido de um anúncio descoberto na Ad Library.
// Depois de criado, apenas AIAnalysis é mutável.
type SavedAd struct {
	ID             string    `json:"id"`
	AdID           string    `json:"adId"`
	PageName       string    `json:"pageName"`
	PageID         *string   `json:"pageId,omitempty"`
	AdText         *string   `json:"adText,omitempty"`
	ImageURL       *string   `json:"imageUrl,omitempty"`
	VideoURL       *string   `json:"videoUrl,omitempty"`
	Platform       *string   `json:"platform,omitempty"`
	Country        *string   `json:"country,omitempty"`
	StartDate      *string   `json:"startDate,omitempty"`
	LandingPageURL *string   `json:"landingPageUrl,omitempty"`
	Category       *string   `json:"category,omitempty"`
	AIAnalysis     *string   `json:"aiAnalysis,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ArchiveAd é um anúncio da Ad Library já transformado para o painel.
// Transitório, nunca persistido diretamente.
type ArchiveAd struct {
	ID              string   `json:"id"`
	PageID          *string  `json:"pageId"`
	PageName        string   `json:"pageName"`
	AdText          string   `json:"adText"`
	LinkTitle       string   `json:"linkTitle"`
	LinkCaption     string   `json:"linkCaption"`
	LinkDescription string   `json:"linkDescription"`
	StartDate       *string  `json:"startDate"`
	StopDate        *string  `json:"stopDate"`
	DaysActive      int      `json:"daysActive"`
	Platforms       []string `json:"platforms"`
	SnapshotURL     *string  `json:"snapshotUrl"`
	Languages       []string `json:"languages"`
	Impressions     any      `json:"impressions"`
	Spend           any      `json:"spend"`
	PageAdCount     int      `json:"pageAdCount"`
}

// ArchiveSearchFilters são os filtros da busca na Ad Library. After é o
// cursor opaco devolvido pela API remota, repassado sem interpretação.
type ArchiveSearchFilters struct {
	SearchTerms  string
	Country      string
	MediaType    string
	ActiveStatus string
	Platform     string
	Language     string
	After        string
	Limit        string
}

type ArchiveSearchResponse struct {
	Connected bool         `json:"connected"`
	Error     string       `json:"error,omitempty"`
	Ads       []*ArchiveAd `json:"ads,omitempty"`
	Total     int          `json:"total"`
	After     string       `json:"after,omitempty"`
}

type SaveAdRequest struct {
	AdID           string  `json:"adId"`
	PageName       string  `json:"pageName"`
	PageID         *string `json:"pageId,omitempty"`
	AdText         *string `json:"adText,omitempty"`
	ImageURL       *string `json:"imageUrl,omitempty"`
	VideoURL       *string `json:"videoUrl,omitempty"`
	Platform       *string `json:"platform,omitempty"`
	Country        *string `json:"country,omitempty"`
	StartDate      *string `json:"startDate,omitempty"`
	LandingPageURL *string `json:"landingPageUrl,omitempty"`
	Category       *string `json:"category,omitempty"`
}

type SaveAdResponse struct {
	Success      bool     `json:"success"`
	AlreadySaved bool     `json:"alreadySaved,omitempty"`
	Ad           *SavedAd `json:"ad,omitempty"`
}

// AIAction é a operação pedida ao fluxo de IA da Ad Library.
type AIAction string

const (
	AIActionAnalyze      AIAction = "analyze"
	AIActionGenerateCopy AIAction = "generate_copy"
)

type AIRequest struct {
	Action AIAction `json:"action"`
	AdText string   `json:"adText"`
	AdID   string   `json:"adId,omitempty"`
}

type AIResponse struct {
	Result string `json:"result"`
}
