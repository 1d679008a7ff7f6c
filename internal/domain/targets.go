// Package domain implements the layout wrapper removal workflow.
package domain

import m "layoutfix.dev/pkg/layoutfix/internal/model"

// defaultTargets lists the dashboard pages that still wrap themselves in
// DashboardLayout. Order is the processing order.
var defaultTargets = []m.Path{
	"app/dashboard/page.tsx",
	"app/dashboard/audit-logs/page.tsx",
	"app/dashboard/reports/page.tsx",
	"app/dashboard/settings/backup/page.tsx",
	"app/dashboard/profile/page.tsx",
	"app/dashboard/overview/dashboard-overview-client.tsx",
	"app/dashboard/leave-notifications/leave-notifications-client.tsx",
	"app/dashboard/leave-management/leave-management-client.tsx",
	"app/dashboard/instructor/page.tsx",
	"app/dashboard/excuse-duty-review/page.tsx",
	"app/dashboard/data-management/page.tsx",
	"app/dashboard/analytics/page.tsx",
	"app/dashboard/attendance-tracking/page.tsx",
	"app/dashboard/settings/device-radius/page.tsx",
}

// DefaultTargets returns a copy of the fixed target list.
func DefaultTargets() []m.Path {
	targets := make([]m.Path, len(defaultTargets))
	copy(targets, defaultTargets)

	return targets
}

func targetsOrDefault(targets []m.Path) []m.Path {
	if len(targets) == 0 {
		return DefaultTargets()
	}

	return targets
}
