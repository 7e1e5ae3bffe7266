package api

import "github.com/tedsuo/rata"

const (
	StartScan = "StartScan"
	ListScans = "ListScans"
	GetScan   = "GetScan"

	ListFindings      = "ListFindings"
	GetFinding        = "GetFinding"
	TransitionFinding = "TransitionFinding"

	ListLeaks   = "ListLeaks"
	GetLeak     = "GetLeak"
	ResolveLeak = "ResolveLeak"

	QueryAudit  = "QueryAudit"
	RecordAudit = "RecordAudit"
	ExportAudit = "ExportAudit"

	GetStats = "GetStats"
)

var Routes = rata.Routes{
	{Path: "/projects/:project_id/scans", Method: "POST", Name: StartScan},
	{Path: "/projects/:project_id/scans", Method: "GET", Name: ListScans},
	{Path: "/scans/:scan_id", Method: "GET", Name: GetScan},

	{Path: "/projects/:project_id/findings", Method: "GET", Name: ListFindings},
	{Path: "/findings/:finding_id", Method: "GET", Name: GetFinding},
	{Path: "/findings/:finding_id/transitions", Method: "POST", Name: TransitionFinding},

	{Path: "/leaks", Method: "GET", Name: ListLeaks},
	{Path: "/leaks/:leak_id", Method: "GET", Name: GetLeak},
	{Path: "/leaks/:leak_id/resolve", Method: "POST", Name: ResolveLeak},

	{Path: "/projects/:project_id/audit", Method: "GET", Name: QueryAudit},
	{Path: "/projects/:project_id/audit", Method: "POST", Name: RecordAudit},
	{Path: "/projects/:project_id/audit/export", Method: "GET", Name: ExportAudit},

	{Path: "/stats", Method: "GET", Name: GetStats},
}
