package constants

// JobStatus is the canonical status for rows in ingest_job.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusRunning JobStatus = "RUNNING" // in progress
	JobStatusOK      JobStatus = "OK"      // completed, text/summary returned to the client
	JobStatusFailed  JobStatus = "FAILED"  // terminal failure
)

// JobKinds holds the allowed values for the kind field in IngestJob.
var JobKinds = []string{JobKindExtractPDF, JobKindTranscribe, JobKindSummarize}

const (
	JobKindExtractPDF = "EXTRACT_PDF"
	JobKindTranscribe = "TRANSCRIBE"
	JobKindSummarize  = "SUMMARIZE"
)
