package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/danmuck/tapcode/internal/gridfile"
	"github.com/danmuck/tapcode/internal/observability"
	"github.com/danmuck/tapcode/internal/tapcode"
	"github.com/rs/zerolog/log"
)

// App hosts the interactive menu loop over one active grid.
type App struct {
	reader *bufio.Reader
	out    io.Writer
	active *tapcode.Active
	store  gridfile.Store
	styles Styles
}

func NewApp(in io.Reader, out io.Writer, active *tapcode.Active, store gridfile.Store, styles Styles) *App {
	if active == nil {
		active = tapcode.NewActive(nil)
	}
	return &App{
		reader: bufio.NewReader(in),
		out:    out,
		active: active,
		store:  store,
		styles: styles,
	}
}

// Run executes the main interactive menu loop until exit or end of input.
func (a *App) Run() error {
	a.printMainMenu()
	log.Debug().Str("grid", a.active.Load().Alphabet()).Msg("shell started")

	for {
		a.println()
		choice, err := a.promptLine("Enter your choice")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return a.exit()
			}
			return err
		}

		switch strings.TrimSpace(choice) {
		case "1":
			err = a.encodeMessage()
		case "2":
			err = a.decodeTapcode()
		case "3":
			err = a.setCustomGrid()
		case "4":
			a.saveGrid()
		case "5":
			a.loadGrid()
		case "6":
			a.printHelp()
		case "7":
			return a.exit()
		default:
			a.println("Invalid choice. Please enter a number between 1 and 7.")
		}
		if errors.Is(err, io.EOF) {
			return a.exit()
		}
		if err != nil {
			return err
		}
	}
}

func (a *App) exit() error {
	a.println(a.styles.paint(a.styles.Farewell, "Goodbye!"))
	log.Debug().Msg("shell exiting")
	return nil
}

func (a *App) printMainMenu() {
	a.println(a.styles.paint(a.styles.Title, "Tapcode Cipher"))
	a.println("1. Encode a message")
	a.println("2. Decode a Tapcode")
	a.println("3. Set a custom 5x5 alphabet grid")
	a.println("4. Save current grid to file")
	a.println("5. Load grid from file")
	a.println("6. Display help")
	a.println("7. Exit")
}

func (a *App) encodeMessage() error {
	a.println(a.styles.paint(a.styles.Muted, "Note: Use '|' to separate words in Tapcode."))
	message, err := a.promptLine("Enter message to encode")
	if err != nil {
		return err
	}
	encoded, err := a.active.Load().Encode(strings.TrimSpace(message))
	observability.RecordOperation(observability.OpEncode, err)
	if err != nil {
		a.printError(err)
		return nil
	}
	a.printf("Encoded Tapcode: %s\n", encoded)
	return nil
}

func (a *App) decodeTapcode() error {
	a.println(a.styles.paint(a.styles.Muted, "Note: Use '|' to separate words in Tapcode (e.g., ... .... | .... ....)."))
	code, err := a.promptLine("Enter Tapcode to decode")
	if err != nil {
		return err
	}
	decoded, err := a.active.Load().Decode(strings.TrimSpace(code))
	observability.RecordOperation(observability.OpDecode, err)
	if err != nil {
		a.printError(err)
		return nil
	}
	a.printf("Decoded Message: %s\n", decoded)
	return nil
}

func (a *App) setCustomGrid() error {
	alphabet, err := a.promptLine("Enter a new 5x5 alphabet grid (25 characters)")
	if err != nil {
		return err
	}
	next, err := tapcode.New(strings.TrimSpace(alphabet), a.active.Load().Marker())
	observability.RecordOperation(observability.OpSetGrid, err)
	if err != nil {
		a.printError(err)
		return nil
	}
	a.active.Swap(next)
	log.Info().Str("grid", next.Alphabet()).Msg("custom grid set")
	a.println(a.styles.paint(a.styles.Success, "Custom grid set successfully!"))
	a.println(RenderGrid(next))
	return nil
}

func (a *App) saveGrid() {
	err := a.store.Save(a.active.Load())
	observability.RecordOperation(observability.OpSaveGrid, err)
	if err != nil {
		log.Warn().Err(err).Str("path", a.store.Path()).Msg("grid save failed")
		a.printf("Error saving grid to file: %v\n", err)
		return
	}
	log.Info().Str("path", a.store.Path()).Msg("grid saved")
	a.println(a.styles.paint(a.styles.Success, fmt.Sprintf("Grid saved to %s!", a.store.Path())))
}

func (a *App) loadGrid() {
	next, err := a.store.Load(a.active.Load().Marker())
	observability.RecordOperation(observability.OpLoadGrid, err)
	if err != nil {
		log.Warn().Err(err).Str("path", a.store.Path()).Msg("grid load failed")
		a.printError(err)
		return
	}
	a.active.Swap(next)
	log.Info().Str("path", a.store.Path()).Str("grid", next.Alphabet()).Msg("grid loaded")
	a.println(a.styles.paint(a.styles.Success, "Grid loaded successfully!"))
	a.println(RenderGrid(next))
}

func (a *App) printHelp() {
	a.println(a.styles.paint(a.styles.Heading, "Tapcode Cipher Help"))
	a.println()
	a.println("Features:")
	a.println("1. Encode: Convert a message into Tapcode using the current grid.")
	a.println("2. Decode: Convert Tapcode back into a message using the current grid.")
	a.println("3. Set Custom Grid: Define a custom 5x5 grid for encoding/decoding.")
	a.println("4. Save Grid: Save the current grid to " + a.store.Path() + ".")
	a.println("5. Load Grid: Load a grid from " + a.store.Path() + ".")
	a.println("6. Help: Show this text.")
	a.println("7. Exit: Quit the program.")
	a.println()
	a.println("Tapcode Notes:")
	a.println("  - Separate words in Tapcode using '|'.")
	a.println("  - Messages must only contain characters from the grid.")
	a.println()
	a.println("Current grid:")
	a.println(RenderGrid(a.active.Load()))
}

func (a *App) printError(err error) {
	a.printf("Error: %v\n", err)
}

// promptLine reads one line; a final unterminated line is returned before io.EOF.
func (a *App) promptLine(label string) (string, error) {
	if strings.TrimSpace(label) != "" {
		a.printf("%s: ", label)
	}
	line, err := a.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
