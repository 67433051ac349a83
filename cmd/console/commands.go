package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/odyssey-travel/odyssey-console/internal/domain"
	"github.com/odyssey-travel/odyssey-console/internal/repository"
	"github.com/odyssey-travel/odyssey-console/internal/screen"
	"github.com/odyssey-travel/odyssey-console/internal/session"
	"github.com/odyssey-travel/odyssey-console/internal/ui"
	"github.com/odyssey-travel/odyssey-console/internal/viewmodel"
	"github.com/odyssey-travel/odyssey-console/pkg/apperr"
)

func (a *app) cmdLogin(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("login", pflag.ContinueOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	role := fs.String("role", string(domain.RoleClient), "portal role: CLIENT, AGENT or ADMIN")
	if err := fs.Parse(args); err != nil {
		return err
	}

	r := domain.Role(strings.ToUpper(*role))
	if !r.Valid() {
		return apperr.NewValidation(fmt.Sprintf("unknown role %q", *role), nil)
	}
	if *email == "" || *password == "" {
		return apperr.NewValidation("email and password are required", nil)
	}

	result, err := a.auth.Login(ctx, repository.LoginRequest{
		Email:    *email,
		Password: *password,
		Role:     r,
	})
	if err != nil {
		return err
	}
	if err := a.sessions.Save(&session.Session{
		User:    result.User,
		Token:   result.Token,
		SavedAt: time.Now(),
	}); err != nil {
		return err
	}
	fmt.Printf("Logged in as %s (%s)\n", result.User.DisplayName(), result.User.Role)
	return nil
}

func (a *app) cmdLogout() error {
	if err := a.sessions.Clear(); err != nil {
		return err
	}
	fmt.Println("Logged out.")
	return nil
}

func (a *app) cmdWhoami() error {
	sess, err := a.currentSession()
	if err != nil {
		return err
	}
	fmt.Printf("%s <%s> — %s\n", sess.User.DisplayName(), sess.User.Email, sess.User.Role)
	return nil
}

func (a *app) cmdSupport(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}
	switch args[0] {
	case "list":
		return a.supportList(ctx, args[1:])
	case "raise":
		return a.supportRaise(ctx, args[1:])
	case "status":
		return a.supportStatus(ctx, args[1:])
	default:
		return fmt.Errorf("unknown support subcommand %q", args[0])
	}
}

func (a *app) supportList(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("support list", pflag.ContinueOnError)
	search := fs.String("search", "", "filter by subject, description or ticket id")
	status := fs.String("status", "ALL", "filter by status, or ALL")
	if err := fs.Parse(args); err != nil {
		return err
	}

	query, err := ticketQuery(*search, *status)
	if err != nil {
		return err
	}

	sess, err := a.currentSession()
	if err != nil {
		return err
	}

	switch sess.User.Role {
	case domain.RoleClient:
		desk, err := screen.NewSupportDesk(sess.User, a.supportDeskDeps())
		if err != nil {
			return err
		}
		_ = desk.Refresh(ctx)
		a.printTickets(viewmodel.FilterTickets(desk.History(), query), desk.Banner, desk.Stale)
		fmt.Printf("%d active request(s)\n", desk.ActiveCount())
		return nil
	case domain.RoleAgent:
		queue, err := screen.NewAgentQueue(sess.User, a.agentQueueDeps())
		if err != nil {
			return err
		}
		_ = queue.Refresh(ctx)
		a.printTickets(viewmodel.FilterTickets(queue.Queue(), query), queue.Banner, queue.Stale)
		fmt.Printf("%d active ticket(s)\n", queue.ActiveCount())
		return nil
	default:
		stream, err := screen.NewAdminStream(sess.User, a.adminStreamDeps())
		if err != nil {
			return err
		}
		stream.SetSearch(query.SearchTerm)
		if err := stream.SetStatusFilter(query.Status); err != nil {
			return err
		}
		_ = stream.Refresh(ctx)
		a.printTickets(stream.Visible(), stream.Banner, stream.Stale)
		fmt.Printf("%d active ticket(s)\n", stream.ActiveCount())
		return nil
	}
}

// ticketQuery validates the status filter and pairs it with the search
// term, so every role's listing honors the same flags.
func ticketQuery(search, status string) (viewmodel.TicketQuery, error) {
	status = strings.ToUpper(strings.TrimSpace(status))
	if status == "" {
		status = viewmodel.StatusAll
	}
	if status != viewmodel.StatusAll && !domain.TicketStatus(status).Valid() {
		return viewmodel.TicketQuery{}, apperr.NewValidation(fmt.Sprintf("unknown status filter %q", status), nil)
	}
	return viewmodel.TicketQuery{SearchTerm: search, Status: status}, nil
}

func (a *app) supportRaise(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("support raise", pflag.ContinueOnError)
	subject := fs.String("subject", "", "short summary of the issue")
	description := fs.String("description", "", "full description of the issue")
	priority := fs.String("priority", string(domain.TicketPriorityLow), "LOW, MEDIUM or HIGH")
	bookingID := fs.Int64("booking", 0, "related booking id, if any")
	if err := fs.Parse(args); err != nil {
		return err
	}

	sess, err := a.currentSession()
	if err != nil {
		return err
	}
	desk, err := screen.NewSupportDesk(sess.User, a.supportDeskDeps())
	if err != nil {
		return err
	}

	draft := domain.TicketDraft{
		Subject:     *subject,
		Description: *description,
		Priority:    domain.TicketPriority(strings.ToUpper(*priority)),
	}
	if *bookingID != 0 {
		draft.BookingID = bookingID
	}
	if err := desk.Raise(ctx, draft); err != nil {
		fmt.Println(ui.Banner(desk.Banner))
		return err
	}
	fmt.Println(ui.Banner(desk.Banner))
	a.printTickets(desk.History(), screen.Banner{}, desk.Stale)
	return nil
}

func (a *app) supportStatus(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return apperr.NewValidation("usage: odyssey support status <ticketId> <newStatus>", nil)
	}
	ticketID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return apperr.NewValidation(fmt.Sprintf("invalid ticket id %q", args[0]), nil)
	}
	status := domain.TicketStatus(strings.ToUpper(args[1]))

	sess, err := a.currentSession()
	if err != nil {
		return err
	}

	switch sess.User.Role {
	case domain.RoleAgent:
		queue, err := screen.NewAgentQueue(sess.User, a.agentQueueDeps())
		if err != nil {
			return err
		}
		_ = queue.Refresh(ctx)
		if err := queue.UpdateStatus(ctx, ticketID, status); err != nil {
			fmt.Println(ui.Banner(queue.Banner))
			return err
		}
		fmt.Println(ui.Banner(queue.Banner))
		a.printTickets(queue.Queue(), screen.Banner{}, queue.Stale)
		return nil
	case domain.RoleAdmin:
		stream, err := screen.NewAdminStream(sess.User, a.adminStreamDeps())
		if err != nil {
			return err
		}
		_ = stream.Refresh(ctx)
		if err := stream.UpdateStatus(ctx, ticketID, status); err != nil {
			fmt.Println(ui.Banner(stream.Banner))
			return err
		}
		fmt.Println(ui.Banner(stream.Banner))
		a.printTickets(stream.Visible(), screen.Banner{}, stream.Stale)
		return nil
	default:
		return apperr.NewPermission("your role cannot update ticket status")
	}
}

func (a *app) cmdBookings(ctx context.Context) error {
	sess, err := a.currentSession()
	if err != nil {
		return err
	}
	catalog := screen.NewCatalog(sess.User, a.packages, a.bookings)

	var list []domain.Booking
	if sess.User.Role == domain.RoleAgent {
		list, err = catalog.BookingsOverview(ctx)
	} else {
		list, err = catalog.BookingHistory(ctx)
	}
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(list))
	for _, b := range list {
		rows = append(rows, []string{
			fmt.Sprintf("#%d", b.BookingID),
			b.PackageTitle,
			b.TravelDate.Format("2006-01-02"),
			strconv.Itoa(b.Travelers),
			fmt.Sprintf("%.2f", b.TotalAmount),
			b.Status,
		})
	}
	fmt.Print(ui.Table([]string{"REF", "PACKAGE", "TRAVEL DATE", "TRAVELERS", "AMOUNT", "STATUS"}, rows))
	return nil
}

func (a *app) cmdPackages(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("packages", pflag.ContinueOnError)
	mine := fs.Bool("mine", false, "only packages owned by the logged-in agent")
	if err := fs.Parse(args); err != nil {
		return err
	}

	sess, err := a.currentSession()
	if err != nil {
		return err
	}
	catalog := screen.NewCatalog(sess.User, a.packages, a.bookings)

	var list []domain.TravelPackage
	if *mine {
		list, err = catalog.MyPackages(ctx)
	} else {
		list, err = catalog.BrowsePackages(ctx)
	}
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(list))
	for _, p := range list {
		rows = append(rows, []string{
			fmt.Sprintf("#%d", p.PackageID),
			p.Title,
			p.Destination,
			fmt.Sprintf("%.2f", p.Price),
			string(p.Status),
		})
	}
	fmt.Print(ui.Table([]string{"REF", "TITLE", "DESTINATION", "PRICE", "STATUS"}, rows))
	return nil
}

func (a *app) cmdUsers(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}

	sess, err := a.currentSession()
	if err != nil {
		return err
	}
	admin, err := screen.NewUserAdmin(sess.User, a.userAdminDeps())
	if err != nil {
		return err
	}

	switch args[0] {
	case "list":
		fs := pflag.NewFlagSet("users list", pflag.ContinueOnError)
		search := fs.String("search", "", "filter by name or email")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		admin.SearchTerm = *search
		if err := admin.Refresh(ctx); err != nil {
			fmt.Println(ui.Banner(admin.Banner))
			return err
		}
		rows := make([][]string, 0, len(admin.Visible()))
		for _, u := range admin.Visible() {
			state := "active"
			if !u.Active {
				state = "blocked"
			}
			rows = append(rows, []string{
				fmt.Sprintf("#%d", u.ID),
				u.DisplayName(),
				u.Email,
				state,
			})
		}
		fmt.Print(ui.Table([]string{"REF", "NAME", "EMAIL", "STATE"}, rows))
		return nil
	case "block", "unblock":
		if len(args) < 2 {
			return apperr.NewValidation(fmt.Sprintf("usage: odyssey users %s <id>", args[0]), nil)
		}
		userID, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return apperr.NewValidation(fmt.Sprintf("invalid user id %q", args[1]), nil)
		}
		if err := admin.ToggleBlock(ctx, userID, args[0] == "block"); err != nil {
			fmt.Println(ui.Banner(admin.Banner))
			return err
		}
		fmt.Println(ui.Banner(admin.Banner))
		return nil
	default:
		return fmt.Errorf("unknown users subcommand %q", args[0])
	}
}

func (a *app) cmdStats(ctx context.Context) error {
	sess, err := a.currentSession()
	if err != nil {
		return err
	}

	switch sess.User.Role {
	case domain.RoleAdmin:
		dash, err := screen.NewAdminDashboard(sess.User, a.stats, a.logger)
		if err != nil {
			return err
		}
		if err := dash.Refresh(ctx); err != nil {
			return err
		}
		s := dash.Stats
		fmt.Printf("Revenue: %.2f\nBookings: %d\nCustomers: %d\nAgents: %d\nPackages: %d\nPending approvals: %d\n",
			s.TotalRevenue, s.TotalBookings, s.TotalCustomers, s.TotalAgents, s.TotalPackages, s.PendingApprovals)
		return nil
	case domain.RoleAgent:
		dash, err := screen.NewAgentDashboard(sess.User, a.agentDashboardDeps())
		if err != nil {
			return err
		}
		_ = dash.Refresh(ctx)
		if !dash.Banner.Empty() {
			fmt.Println(ui.Banner(dash.Banner))
		}
		fmt.Printf("Approved packages: %d\nPending packages: %d\nActive tickets: %d\n",
			dash.ApprovedPackages(), dash.PendingPackages(), dash.ActiveTickets())
		if s := dash.Stats; s != nil {
			fmt.Printf("Active bookings: %d\nTotal earnings: %.2f\n", s.ActiveBookings, s.TotalEarnings)
		}
		return nil
	default:
		return apperr.NewPermission("stats are limited to agents and admins")
	}
}

func (a *app) printTickets(tickets []domain.Ticket, banner screen.Banner, stale bool) {
	if !banner.Empty() {
		fmt.Println(ui.Banner(banner))
	}
	if stale {
		fmt.Println(ui.StaleNotice())
	}
	fmt.Print(ui.Table(ui.TicketHeaders(), ui.TicketRows(tickets)))
}

func (a *app) supportDeskDeps() screen.SupportDeskDeps {
	return screen.SupportDeskDeps{
		Tickets:    a.tickets,
		Bookings:   a.bookings,
		Snapshots:  a.snapshots,
		Dispatcher: a.dispatcher,
		Logger:     a.logger,
	}
}

func (a *app) agentQueueDeps() screen.AgentQueueDeps {
	return screen.AgentQueueDeps{
		Tickets:    a.tickets,
		Snapshots:  a.snapshots,
		Dispatcher: a.dispatcher,
		Logger:     a.logger,
	}
}

func (a *app) adminStreamDeps() screen.AdminStreamDeps {
	return screen.AdminStreamDeps{
		Tickets:    a.tickets,
		Snapshots:  a.snapshots,
		Dispatcher: a.dispatcher,
		Logger:     a.logger,
	}
}

func (a *app) userAdminDeps() screen.UserAdminDeps {
	return screen.UserAdminDeps{
		Users:      a.users,
		Dispatcher: a.dispatcher,
		Logger:     a.logger,
	}
}

func (a *app) agentDashboardDeps() screen.AgentDashboardDeps {
	return screen.AgentDashboardDeps{
		Packages: a.packages,
		Bookings: a.bookings,
		Tickets:  a.tickets,
		Stats:    a.stats,
		Logger:   a.logger,
	}
}
