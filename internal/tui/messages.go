package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mitchellbreust/client-crawler/models"
)

// Page names used with NavigateTo.
const (
	pageMenu     = "menu"
	pageLogin    = "login"
	pageRegister = "register"
	pageJobs     = "jobs"
	pageJobForm  = "job-form"
	pageJob      = "job"
	pageSearch   = "search"
	pageBatch    = "batch"
	pageSettings = "settings"

	pageConversations = "conversations"
)

// NavigateTo switches the active page. The page is re-initialised and
// Payload, when set, is delivered to it right after.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// StatusNotice is a one-line confirmation shown by the page it is sent to.
type StatusNotice struct {
	Text string
}

// OpenJob asks the job page to show job.
type OpenJob struct {
	Job models.Job
}

// BatchTargets hands the selected jobs to the batch page.
type BatchTargets struct {
	Jobs []models.Job
}

type sessionReadyMsg struct {
	err error
}

type sessionChangedMsg struct {
	session models.Session
}

type unauthorizedMsg struct{}

type loggedOutMsg struct{}

type authResultMsg struct {
	err error
}

type jobsLoadedMsg struct {
	jobs []models.Job
	err  error
}

type jobSavedMsg struct {
	job models.Job
	err error
}

type jobDeletedMsg struct {
	id  int64
	err error
}

type searchUpdateMsg struct {
	tasks []models.SearchTask
}

type searchSubmittedMsg struct {
	handle models.SearchHandle
	err    error
}

type jobsImportedMsg struct{}

type conversationMsg struct {
	jobID        int64
	conversation models.Conversation
	err          error
}

type conversationsLoadedMsg struct {
	conversations []models.ConversationSummary
	err           error
}

type conversationJobMsg struct {
	job models.Job
	err error
}

type messageSentMsg struct {
	message models.Message
	err     error
}

type generatedMsg struct {
	text string
	err  error
}

type batchDoneMsg struct {
	result models.BatchResult
}

type settingsSavedMsg struct {
	err error
}
