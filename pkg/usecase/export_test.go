package usecase

// Export unexported functions for testing
var (
	RunStepForTest                   = runStep[string]
	SkipStepForTest                  = skipStep[string]
	MatchBranchesForTest             = matchBranches
	ExtractLogEntriesForTest         = extractLogEntries
	FindDeployLogForTest             = findDeployLog
	ReadLogTextForTest               = readLogText
	ExtractPayloadForTest            = extractPayload
	BuildReleaseSummaryReportForTest = buildReleaseSummaryReport
	SplitIssueKeysForTest            = splitIssueKeys
)
