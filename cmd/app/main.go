package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Wuubzi/healthunity-client/internal/activity"
	"github.com/Wuubzi/healthunity-client/internal/api"
	"github.com/Wuubzi/healthunity-client/internal/apierr"
	"github.com/Wuubzi/healthunity-client/internal/auth"
	"github.com/Wuubzi/healthunity-client/internal/cache"
	"github.com/Wuubzi/healthunity-client/internal/config"
	"github.com/Wuubzi/healthunity-client/internal/logger"
	"github.com/Wuubzi/healthunity-client/internal/session"
	"github.com/Wuubzi/healthunity-client/internal/storage"
	"github.com/Wuubzi/healthunity-client/internal/timezone"
	ucAssistant "github.com/Wuubzi/healthunity-client/internal/usecase/assistant"
	ucBooking "github.com/Wuubzi/healthunity-client/internal/usecase/booking"
	ucBookings "github.com/Wuubzi/healthunity-client/internal/usecase/bookings"
	ucDoctors "github.com/Wuubzi/healthunity-client/internal/usecase/doctors"
	ucProfile "github.com/Wuubzi/healthunity-client/internal/usecase/profile"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Initialize()
	log := logger.Get()
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := session.NewStore(cfg.StateDir, sessionPassphrase())
	sess := session.New(store)
	client := api.New(cfg.APIBaseURL, sess, log)

	cacheLayer := cache.New(cfg.RedisAddr, 10*time.Minute, log)
	defer cacheLayer.Close()

	disp := activity.NewDispatcher(log)
	defer disp.Close()

	var uploader *storage.Uploader
	if cfg.CloudinaryCloud != "" {
		var err error
		uploader, err = storage.NewUploader(cfg)
		if err != nil {
			log.Warn("cloudinary deshabilitado", zap.Error(err))
		}
	}

	app := &appDeps{
		cfg:       cfg,
		log:       log,
		sess:      sess,
		client:    client,
		disp:      disp,
		finder:    ucDoctors.NewFinder(client, cacheLayer),
		favorites: ucDoctors.NewFavorites(client, sess, disp),
		citas:     ucBookings.NewList(client, sess, disp),
		profile:   ucProfile.NewFlow(client, sess, uploader, log),
		chat:      ucAssistant.NewChat(client, sess),
	}

	if err := app.run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

type appDeps struct {
	cfg       *config.Config
	log       *zap.Logger
	sess      *session.Session
	client    *api.Client
	disp      *activity.Dispatcher
	finder    *ucDoctors.Finder
	favorites *ucDoctors.Favorites
	citas     *ucBookings.List
	profile   *ucProfile.Flow
	chat      *ucAssistant.Chat
}

func (a *appDeps) run(ctx context.Context, args []string) error {
	err := a.dispatch(ctx, args)
	if apierr.IsAuth(err) {
		// el backend rechazó el token: tiramos la sesión, igual que
		// hace la app al recibir 401
		a.log.Warn("token rechazado por el backend", zap.Error(err))
		_ = a.sess.Clear()
		return fmt.Errorf("tu sesión fue rechazada; vuelve a ejecutar login")
	}
	return err
}

func (a *appDeps) dispatch(ctx context.Context, args []string) error {
	if len(args) == 0 {
		usage()
		return nil
	}

	switch args[0] {
	case "login":
		return a.login(ctx)
	case "logout":
		return a.sess.Clear()
	case "perfil":
		return a.showProfile(ctx)
	case "doctores":
		return a.searchDoctors(ctx, args[1:])
	case "top":
		return a.topDoctors(ctx)
	case "especialidades":
		return a.specialties(ctx)
	case "citas":
		return a.listCitas(ctx, args[1:])
	case "proxima":
		return a.proximaCita(ctx)
	case "cancelar":
		return a.cancelCita(ctx, args[1:])
	case "reservar":
		return a.book(ctx, args[1:], nil)
	case "reprogramar":
		return a.rebook(ctx, args[1:])
	case "favoritos":
		return a.listFavorites(ctx)
	case "favorito":
		return a.toggleFavorite(ctx, args[1:])
	case "opiniones":
		return a.listReviews(ctx, args[1:])
	case "opinar":
		return a.addReview(ctx, args[1:])
	case "eva":
		return a.askEva(ctx, args[1:])
	default:
		usage()
		return fmt.Errorf("comando desconocido %q", args[0])
	}
}

func (a *appDeps) login(ctx context.Context) error {
	flow := auth.NewFlow(a.cfg, a.log)
	creds, err := flow.Login(ctx)
	if err != nil {
		return err
	}
	if err := a.sess.SetCredentials(*creds); err != nil {
		return err
	}

	completed, err := a.profile.EnsureRegistered(ctx)
	if err != nil {
		// registro fallido: tiramos los tokens, igual que la app
		_ = a.sess.Clear()
		return err
	}
	if _, err := a.profile.Fetch(ctx); err != nil {
		a.log.Warn("no se pudo traer el paciente tras login", zap.Error(err))
	}

	if completed {
		fmt.Println("Sesión iniciada.")
	} else {
		fmt.Println("Sesión iniciada. Falta completar tu perfil.")
	}
	return nil
}

func (a *appDeps) showProfile(ctx context.Context) error {
	p, err := a.profile.Fetch(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%s %s <%s>\n", p.Nombre, p.Apellido, p.Gmail)
	fmt.Printf("  nacimiento: %s  teléfono: %s  género: %s\n", p.FechaNacimiento, p.Telefono, p.Genero)
	fmt.Printf("  dirección: %s\n", p.Direccion)
	return nil
}

func (a *appDeps) searchDoctors(ctx context.Context, args []string) error {
	search := strings.Join(args, " ")
	results, err := a.finder.Search(ctx, search, 0, "")
	if err != nil {
		return err
	}
	for _, d := range results {
		fmt.Printf("[%d] %s %s — %s (%.1f★, %d reseñas)\n",
			d.ID, d.Nombre, d.Apellido, d.Especialidad, d.Rating, d.NumberReviews)
	}
	if a.finder.HasNext() {
		fmt.Println("(hay más resultados)")
	}
	return nil
}

func (a *appDeps) topDoctors(ctx context.Context) error {
	top, err := a.finder.TopDoctores(ctx)
	if err != nil {
		return err
	}
	for _, d := range top {
		fmt.Printf("[%d] %s %s — %s (%.1f★)\n", d.ID, d.Nombre, d.Apellido, d.Especialidad, d.Rating)
	}
	return nil
}

func (a *appDeps) specialties(ctx context.Context) error {
	specs, err := a.finder.Especialidades(ctx)
	if err != nil {
		return err
	}
	for _, s := range specs {
		fmt.Printf("[%d] %s\n", s.ID, s.Nombre)
	}
	return nil
}

func (a *appDeps) listCitas(ctx context.Context, args []string) error {
	tab := ucBookings.TabUpcoming
	if len(args) > 0 {
		tab = ucBookings.Tab(args[0])
	}
	citas, err := a.citas.ByTab(ctx, tab)
	if err != nil {
		return err
	}
	for _, c := range citas {
		fmt.Printf("[%d] %s %s — Dr. %s %s (%s)\n",
			c.ID, c.Fecha, c.Hora, c.Doctor.Usuario.Nombre, c.Doctor.Usuario.Apellido, c.Estado)
	}
	return nil
}

func (a *appDeps) proximaCita(ctx context.Context) error {
	cita, err := a.citas.Proxima(ctx)
	if err != nil {
		return err
	}
	if cita == nil {
		fmt.Println("No tienes citas próximas.")
		return nil
	}
	fmt.Printf("Próxima cita: %s %s con Dr. %s %s\n",
		cita.Fecha, cita.Hora, cita.Doctor.Usuario.Nombre, cita.Doctor.Usuario.Apellido)
	return nil
}

func (a *appDeps) cancelCita(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("uso: cancelar <idCita>")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("idCita inválido %q", args[0])
	}
	if err := a.citas.Cancel(ctx, id); err != nil {
		return err
	}
	fmt.Println("Cita cancelada.")
	return nil
}

// book maneja reservar y, con resched != nil, reprogramar.
// Sin fecha/hora solo muestra la disponibilidad.
func (a *appDeps) book(ctx context.Context, args []string, resched *ucBooking.Reschedule) error {
	if len(args) < 1 {
		return fmt.Errorf("uso: reservar <idDoctor> [fecha hora] [razón]")
	}
	doctorID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("idDoctor inválido %q", args[0])
	}

	ctrl := ucBooking.NewController(a.client, a.sess, a.disp, a.log)
	ctrl.UseClock(func() time.Time { return timezone.NowIn(a.cfg.Timezone) })
	defer ctrl.Close()

	if err := ctrl.Start(ctx, doctorID, resched); err != nil {
		return err
	}

	if len(args) >= 3 {
		if err := ctrl.SelectDate(args[1]); err != nil {
			return err
		}
		if err := ctrl.SelectTime(args[2]); err != nil {
			return err
		}
		razon := ""
		if len(args) > 3 {
			razon = strings.Join(args[3:], " ")
		}
		if err := ctrl.Confirm(ctx, razon); err != nil {
			return err
		}
		if resched != nil {
			fmt.Println("Cita reprogramada.")
		} else {
			fmt.Println("Cita reservada.")
		}
		return nil
	}

	doc := ctrl.Doctor()
	fmt.Printf("Dr. %s %s — %s\n", doc.Usuario.Nombre, doc.Usuario.Apellido, doc.Especialidad.Nombre)
	for _, day := range ctrl.Days() {
		if !ctrl.WorksOn(day.Weekday) {
			continue
		}
		if err := ctrl.SelectDate(day.ISODate()); err != nil {
			continue
		}
		morning, afternoon := ctrl.AvailableTimes()
		fmt.Printf("%s:\n", day.ISODate())
		if len(morning) > 0 {
			fmt.Println("  mañana:", strings.Join(morning, "  "))
		}
		if len(afternoon) > 0 {
			fmt.Println("  tarde: ", strings.Join(afternoon, "  "))
		}
		if len(morning)+len(afternoon) == 0 {
			fmt.Println("  sin horarios disponibles")
		}
	}
	return nil
}

func (a *appDeps) rebook(ctx context.Context, args []string) error {
	if len(args) < 4 {
		return fmt.Errorf("uso: reprogramar <idCita> <idDoctor> <fechaActual> <horaActual> [fecha hora razón]")
	}
	idCita, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("idCita inválido %q", args[0])
	}

	resched := &ucBooking.Reschedule{
		IDCita: idCita,
		Fecha:  args[2],
		Hora:   args[3],
	}
	return a.book(ctx, append([]string{args[1]}, args[4:]...), resched)
}

func (a *appDeps) listFavorites(ctx context.Context) error {
	favs, err := a.favorites.List(ctx)
	if err != nil {
		return err
	}
	for _, f := range favs {
		fmt.Printf("[%d] %s %s — %s (%.1f★)\n", f.IDDoctor, f.Nombre, f.Apellido, f.Especialidad, f.Rating)
	}
	return nil
}

func (a *appDeps) toggleFavorite(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("uso: favorito <idDoctor>")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("idDoctor inválido %q", args[0])
	}
	added, err := a.favorites.Toggle(ctx, id)
	if err != nil {
		return err
	}
	if added {
		fmt.Println("Doctor añadido a favoritos.")
	} else {
		fmt.Println("Doctor eliminado de favoritos.")
	}
	return nil
}

func (a *appDeps) listReviews(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("uso: opiniones <idDoctor>")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("idDoctor inválido %q", args[0])
	}
	reviews, err := a.favorites.ListReviews(ctx, id)
	if err != nil {
		return err
	}
	for _, r := range reviews {
		fmt.Printf("%s — %d★ %s (%s %s)\n",
			r.Fecha, r.Estrellas, r.Detalles, r.Paciente.Usuario.Nombre, r.Paciente.Usuario.Apellido)
	}
	return nil
}

func (a *appDeps) addReview(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("uso: opinar <idDoctor> <estrellas> [comentario]")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("idDoctor inválido %q", args[0])
	}
	stars, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("estrellas inválidas %q", args[1])
	}
	if err := a.favorites.AddReview(ctx, id, stars, strings.Join(args[2:], " ")); err != nil {
		return err
	}
	fmt.Println("Reseña enviada.")
	return nil
}

func (a *appDeps) askEva(ctx context.Context, args []string) error {
	if len(args) == 0 {
		reply, err := a.chat.Greet(ctx)
		if err != nil {
			return err
		}
		fmt.Println("Eva:", reply.Text)
		return nil
	}

	reply, err := a.chat.Ask(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	fmt.Println("Eva:", reply.Text)
	return nil
}

func sessionPassphrase() string {
	if v := os.Getenv("SESSION_KEY"); v != "" {
		return v
	}
	// sin clave propia, atamos el blob a la máquina; mismo nivel de
	// protección que un keystore local sin hardware
	host, _ := os.Hostname()
	return "healthunity:" + host
}

func usage() {
	fmt.Println(`uso: healthunity <comando>

  login                  iniciar sesión con Auth0
  logout                 cerrar sesión
  perfil                 ver tu perfil
  doctores [búsqueda]    buscar doctores
  top                    doctores mejor valorados
  especialidades         listar especialidades
  citas [pestaña]        tus citas (upcoming|completed|cancelled)
  proxima                próxima cita
  reservar <idDoctor> [fecha hora razón]
  reprogramar <idCita> <idDoctor> <fechaActual> <horaActual> [fecha hora razón]
  cancelar <idCita>
  favoritos              listar favoritos
  favorito <idDoctor>    añadir/quitar favorito
  opiniones <idDoctor>   reseñas de un doctor
  opinar <idDoctor> <estrellas> [comentario]
  eva [mensaje]          hablar con la asistente`)
}
