package model

// Request and response bodies for the AI assistant endpoints. Each endpoint
// is a single round trip; the server owns all prompt construction.

type DescriptionRequest struct {
	Title          string `json:"title"`
	EventType      string `json:"event_type,omitempty"`
	Location       string `json:"location,omitempty"`
	AdditionalInfo string `json:"additional_info,omitempty"`
}

type DescriptionResponse struct {
	Description string `json:"description"`
}

type SuggestTasksRequest struct {
	Title         string `json:"title"`
	EventType     string `json:"event_type,omitempty"`
	Date          string `json:"date,omitempty"`
	AttendeeCount int    `json:"attendee_count,omitempty"`
}

// SuggestTasksResponse carries plain task titles ready to be created under
// an event.
type SuggestTasksResponse struct {
	Tasks []string `json:"tasks"`
}

type RSVPMessageRequest struct {
	EventTitle  string     `json:"event_title"`
	Status      RSVPStatus `json:"status"`
	UserContext string     `json:"user_context,omitempty"`
}

type RSVPMessageResponse struct {
	Message string `json:"message"`
}

// ChatMessage is one turn of assistant conversation history.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Message             string        `json:"message"`
	EventID             *int64        `json:"event_id,omitempty"`
	ConversationHistory []ChatMessage `json:"conversation_history,omitempty"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

// TimingDetails describes the event being analyzed for schedule advice.
type TimingDetails struct {
	Title         string `json:"title"`
	Date          string `json:"date,omitempty"`
	EventType     string `json:"event_type,omitempty"`
	Duration      string `json:"duration,omitempty"`
	AttendeeCount int    `json:"attendee_count,omitempty"`
}

type OptimizeTimingRequest struct {
	EventDetails TimingDetails `json:"event_details"`
}

type TimingSuggestions struct {
	StartTimeSuggestion string   `json:"start_time_suggestion"`
	DurationSuggestion  string   `json:"duration_suggestion"`
	Considerations      []string `json:"considerations"`
	ScheduleTips        []string `json:"schedule_tips"`
}

type OptimizeTimingResponse struct {
	Suggestions TimingSuggestions `json:"suggestions"`
}
