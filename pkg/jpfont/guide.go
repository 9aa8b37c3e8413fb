package jpfont

import "fmt"

// guides holds per-OS font installation instructions as markdown.
var guides = map[string]string{
	OSWindows: `## Installing a Japanese font on Windows

1. Download Noto Sans CJK JP: https://fonts.google.com/noto/specimen/Noto+Sans+JP
2. Right-click the downloaded font file and choose **Install**.
3. Restart the program.
`,
	OSMacOS: `## Installing a Japanese font on macOS

1. Open the Font Book application.
2. Download Noto Sans CJK JP: https://fonts.google.com/noto/specimen/Noto+Sans+JP
3. Drag the downloaded font into Font Book.
4. Restart the program.
`,
	OSLinux: `## Installing a Japanese font on Linux

Ubuntu/Debian:

    sudo apt-get install fonts-noto-cjk

CentOS/RHEL:

    sudo yum install google-noto-sans-cjk-jp-fonts

Arch Linux:

    sudo pacman -S noto-fonts-cjk

Restart the program after installing.
`,
}

// Guide returns installation instructions for a Japanese font on the given
// OS, as markdown. Font availability only changes after a restart, so the
// instructions always end with one.
func Guide(osID string) (string, error) {
	guide, ok := guides[osID]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedPlatform, osID)
	}
	return guide, nil
}
