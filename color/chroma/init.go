package chroma

// Importing the kernel packages registers them with the global registry.
import (
	_ "github.com/tahe0203/machinevision-toolbox/color/chroma/internal/arch/generic"
)
